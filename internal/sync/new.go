package sync

import (
	"realtime-taskboard/internal/task"
	pkgLog "realtime-taskboard/pkg/log"
	"realtime-taskboard/pkg/realtime"
)

// ChangeListener owns the change feed subscription for one table and re-pulls
// the collection whenever anything changes, regardless of origin.
type ChangeListener struct {
	feed  *realtime.Client
	table string
	uc    task.UseCase
	l     pkgLog.Logger

	sub *realtime.Subscription
}

// New creates a new change feed listener. The subscription is not established
// until Subscribe is called.
func New(feed *realtime.Client, table string, uc task.UseCase, l pkgLog.Logger) *ChangeListener {
	return &ChangeListener{
		feed:  feed,
		table: table,
		uc:    uc,
		l:     l,
	}
}
