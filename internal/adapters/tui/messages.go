package tui

import "time"

// MsgPlan announces the packages of a run.
type MsgPlan struct {
	Packages []string
}

// MsgFetchStart is sent when a package or channel span starts.
type MsgFetchStart struct {
	SpanID    string
	ParentID  string
	Name      string
	StartTime time.Time
}

// MsgFetchComplete is sent when a package or channel span ends.
type MsgFetchComplete struct {
	SpanID  string
	EndTime time.Time
	Outcome string
	Err     error
}
