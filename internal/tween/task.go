package tween

// TaskID uniquely identifies a task within one Scheduler.
type TaskID uint64

// Positionable is any external object exposing a settable 3D position.
// The scheduler never owns the object; the caller keeps the handle valid
// for as long as a task animates it.
type Positionable interface {
	SetPosition(Vec3)
}

// task is one in-flight position interpolation.
// NOTE: elapsed counts from the start of the current traversal direction,
// not from submission; looping resets it on every reversal.
type task struct {
	id       TaskID
	target   Positionable
	start    Vec3
	end      Vec3
	duration float64 // seconds; <= 0 resolves on the task's first tick
	elapsed  float64
	loop     bool // ping-pong forever instead of retiring
	easing   EasingKind
	forward  bool // true = start towards end
	canceled bool
}
