package model

import "time"

// Scope narrows a conflict check. An empty CartID skips cart siblings.
type Scope struct {
	ExcludeOrderItemID string
	CartID             string
	ExcludeCartItemID  string
}

type BusyInterval struct {
	Start time.Time
	End   time.Time
}
