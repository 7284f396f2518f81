package sync

import (
	"context"
	"fmt"
)

// Subscribe establishes the feed channel (unsubscribed → subscribed).
func (cl *ChangeListener) Subscribe(ctx context.Context) error {
	sub, err := cl.feed.Subscribe(ctx, cl.table)
	if err != nil {
		return fmt.Errorf("failed to subscribe to change feed: %w", err)
	}
	cl.sub = sub
	cl.l.Infof(ctx, "change feed: subscribed to table %q", cl.table)
	return nil
}

// Run consumes feed events until the context is cancelled or the channel
// closes. Every event, whatever its type, triggers a full refresh: no payload
// inspection, no incremental patching. Refresh failures are logged and the
// loop keeps going.
func (cl *ChangeListener) Run(ctx context.Context) {
	if cl.sub == nil {
		cl.l.Warn(ctx, "change feed: Run called without an established subscription")
		return
	}
	defer cl.Close()

	for {
		select {
		case <-ctx.Done():
			cl.l.Infof(ctx, "change feed: shutting down: %v", ctx.Err())
			return
		case ev, ok := <-cl.sub.Events():
			if !ok {
				cl.l.Warn(ctx, "change feed: channel closed by transport")
				return
			}

			change := changeEvent(ev)
			cl.l.Debugf(ctx, "change feed: %s on %s, re-pulling collection", change.Type, change.Table)

			refreshCtx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
			if _, err := cl.uc.Refresh(refreshCtx); err != nil {
				cl.l.Errorf(refreshCtx, "change feed: refresh failed: %v", err)
			}
			cancel()
		}
	}
}

// Close tears the subscription down (subscribed → unsubscribed). Safe when
// never subscribed or already closed.
func (cl *ChangeListener) Close() error {
	if cl.sub == nil {
		return nil
	}
	return cl.sub.Close()
}
