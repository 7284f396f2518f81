package realtime

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Client dials the websocket change feed.
type Client struct {
	url    string
	apiKey string
	dialer *websocket.Dialer
}

// NewClient creates a new change feed client.
func NewClient(url, apiKey string) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
		dialer: websocket.DefaultDialer,
	}
}

// Subscription is one live channel of change events. It moves from subscribed
// to unsubscribed exactly once, via Close; reconnection on transport drop is
// not attempted here.
type Subscription struct {
	conn      *websocket.Conn
	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// Subscribe establishes the channel for all events ("*") on table.
func (c *Client) Subscribe(ctx context.Context, table string) (*Subscription, error) {
	header := http.Header{}
	if c.apiKey != "" {
		header.Set("apikey", c.apiKey)
	}

	conn, _, err := c.dialer.DialContext(ctx, c.url, header)
	if err != nil {
		return nil, fmt.Errorf("failed to dial change feed: %w", err)
	}

	frame := subscribeFrame{Action: "subscribe", Table: table, Events: "*"}
	if err := conn.WriteJSON(frame); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to send subscribe frame: %w", err)
	}

	sub := &Subscription{
		conn:   conn,
		events: make(chan Event),
		done:   make(chan struct{}),
	}
	go sub.readPump()

	return sub, nil
}

// Events returns the channel of pushed changes. It is closed when the
// subscription ends, whether by Close or by transport failure.
func (s *Subscription) Events() <-chan Event {
	return s.events
}

// Close tears the subscription down. Safe to call more than once.
func (s *Subscription) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.conn.Close()
	})
	return err
}

// readPump decodes pushed frames until the connection dies.
func (s *Subscription) readPump() {
	defer close(s.events)
	defer s.Close()

	for {
		var frame eventFrame
		if err := s.conn.ReadJSON(&frame); err != nil {
			return
		}
		select {
		case s.events <- Event{
			Table:      frame.Table,
			Type:       frame.Type,
			ReceivedAt: time.Now(),
		}:
		case <-s.done:
			return
		}
	}
}
