package sync

import (
	"time"

	"realtime-taskboard/internal/model"
	"realtime-taskboard/pkg/realtime"
)

// refreshTimeout bounds each feed-triggered refresh so a hung pull cannot
// stall the event loop forever.
const refreshTimeout = 2 * time.Minute

// changeEvent lifts a transport frame into the domain shape. The transport
// package stays ignorant of internal/model; the translation happens here.
func changeEvent(ev realtime.Event) model.ChangeEvent {
	return model.ChangeEvent{
		Table:      ev.Table,
		Type:       model.ChangeType(ev.Type),
		ReceivedAt: ev.ReceivedAt,
	}
}
