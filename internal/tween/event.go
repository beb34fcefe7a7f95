// internal/tween/event.go

package tween

import (
	"time"
)

// StatusKind represents the type of scheduler event
type StatusKind int

const (
	StatusSubmit StatusKind = iota
	StatusRetire
	StatusReverse
	StatusCancel
)

// StatusEvent is emitted when a task changes lifecycle state
type StatusEvent struct {
	Time     time.Time
	Kind     StatusKind
	TaskID   TaskID
	Elapsed  float64
	Progress float64
}

func (sk StatusKind) String() string {
	switch sk {
	case StatusSubmit:
		return "Submit"
	case StatusRetire:
		return "Retire"
	case StatusReverse:
		return "Reverse"
	case StatusCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}
