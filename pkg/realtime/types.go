package realtime

import "time"

// Event is one row-level change pushed by the feed.
type Event struct {
	Table      string
	Type       string // INSERT, UPDATE or DELETE
	ReceivedAt time.Time
}

// subscribeFrame is the initial frame sent after dialing.
type subscribeFrame struct {
	Action string `json:"action"`
	Table  string `json:"table"`
	Events string `json:"events"`
}

// eventFrame is the wire shape of a pushed change.
type eventFrame struct {
	Table string `json:"table"`
	Type  string `json:"type"`
}
