package model

import "time"

// ChangeType is the kind of row-level change reported by the feed.
type ChangeType string

const (
	ChangeInsert ChangeType = "INSERT"
	ChangeUpdate ChangeType = "UPDATE"
	ChangeDelete ChangeType = "DELETE"
)

// ChangeEvent is one row-level event from the remote collection's change feed.
// The payload is deliberately not inspected: the contract is "something
// changed, re-pull everything".
type ChangeEvent struct {
	Table      string
	Type       ChangeType
	ReceivedAt time.Time
}
