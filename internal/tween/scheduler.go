// internal/tween/scheduler.go

package tween

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// Scheduler advances many independent position tweens in one per-frame
// pass instead of one update call per animated object.
//
// It is deliberately not synchronized: Submit, Tick and Cancel must all
// run on the goroutine that owns the host frame loop. Submitting from
// inside a target's position write during Tick is allowed; such tasks
// join on the next tick.
type Scheduler struct {
	// Scheduler-related
	nextID   TaskID
	live     []*task            // dense, submission order, compacted during Tick
	pending  []*task            // submitted since the current/last Tick began
	index    *redblacktree.Tree // TaskID -> *task, backs Cancel and Len
	ticks    int64              // completed Tick passes
	statusCh chan StatusEvent   // channel for status events

	// logging-related
	csvFile   *os.File
	csvWriter *csv.Writer
}

// New creates a new Scheduler instance with the given configuration.
func New(cfg Config) *Scheduler {
	buffer := cfg.EventBuffer
	if buffer <= 0 {
		buffer = 256
	}

	return &Scheduler{
		index:    redblacktree.NewWith(cmp),
		statusCh: make(chan StatusEvent, buffer),
	}
}

// EnableCSVLogging opens the given file path for CSV logging of events.
// Must be called before the first Tick().
func (s *Scheduler) EnableCSVLogging(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)

	// write header
	w.Write([]string{"timestamp", "tick", "event", "task_id", "elapsed", "progress"})
	w.Flush()
	s.csvFile = f
	s.csvWriter = w
	return nil
}

// CloseCSVLogging flushes and closes the log opened by EnableCSVLogging.
func (s *Scheduler) CloseCSVLogging() {
	if s.csvFile != nil {
		s.csvWriter.Flush()
		s.csvFile.Close()
		s.csvFile = nil
		s.csvWriter = nil
	}
}

// StatusChannel exposes read-only stream (optional consumers).
func (s *Scheduler) StatusChannel() <-chan StatusEvent { return s.statusCh }

// Len returns the number of tasks currently held, pending ones included.
func (s *Scheduler) Len() int { return s.index.Size() }

// Submit registers a tween that moves target from start to end over
// duration seconds, then retires it, or ping-pongs forever when loop is
// set. Submission never writes a position; the first write happens on the
// next Tick. A duration <= 0 is accepted and resolves instantly on that
// first tick: the target snaps to end (and reverses from there when
// looping).
func (s *Scheduler) Submit(target Positionable, start, end Vec3, duration float64, loop bool, easing EasingKind) (TaskID, error) {
	if target == nil {
		return 0, fmt.Errorf("submit: nil target")
	}

	s.nextID++
	t := &task{
		id:       s.nextID,
		target:   target,
		start:    start,
		end:      end,
		duration: duration,
		loop:     loop,
		easing:   easing,
		forward:  true,
	}
	s.pending = append(s.pending, t)
	s.index.Put(t.id, t)

	s.emit(StatusEvent{Time: time.Now(), Kind: StatusSubmit, TaskID: t.id})
	return t.id, nil
}

// Cancel removes an in-flight task. The target keeps whatever position
// was last written; nothing further is written for this id.
func (s *Scheduler) Cancel(id TaskID) error {
	v, ok := s.index.Get(id)
	if !ok {
		return fmt.Errorf("no such task %d", id)
	}

	t := v.(*task)
	t.canceled = true
	s.index.Remove(id)

	s.emit(StatusEvent{Time: time.Now(), Kind: StatusCancel, TaskID: id, Elapsed: t.elapsed})
	return nil
}

// Tick advances every live task by delta seconds and writes the resulting
// positions. The host loop calls it exactly once per frame with the real
// time elapsed since the previous call; delta is the only clock, so a
// large delta after a stall jumps tasks toward completion rather than
// animating smoothly. Tasks are processed in submission order; when
// elapsed reaches duration a looping task reverses direction and a
// non-looping task is retired within the same pass.
func (s *Scheduler) Tick(delta float64) {
	if delta < 0 {
		delta = 0
	}

	// tasks submitted since the previous pass join here, never mid-pass
	if len(s.pending) > 0 {
		s.live = append(s.live, s.pending...)
		s.pending = s.pending[:0]
	}

	// single forward pass with write-index compaction, so a retirement
	// neither skips nor double-processes a neighbouring task
	w := 0
	for _, t := range s.live {
		if t.canceled {
			continue
		}

		t.elapsed += delta
		progress := 1.0
		if t.duration > 0 {
			progress = t.elapsed / t.duration
			if progress > 1 {
				progress = 1
			}
		}
		eased := t.easing.Ease(progress)

		if t.forward {
			t.target.SetPosition(Lerp(t.start, t.end, eased))
		} else {
			t.target.SetPosition(Lerp(t.end, t.start, eased))
		}

		if t.elapsed >= t.duration {
			if t.loop {
				t.forward = !t.forward
				t.elapsed = 0
				s.emit(StatusEvent{Time: time.Now(), Kind: StatusReverse, TaskID: t.id, Progress: progress})
			} else {
				s.index.Remove(t.id)
				s.emit(StatusEvent{Time: time.Now(), Kind: StatusRetire, TaskID: t.id, Elapsed: t.elapsed, Progress: progress})
				continue
			}
		}

		s.live[w] = t
		w++
	}
	for i := w; i < len(s.live); i++ {
		s.live[i] = nil // release retired tasks
	}
	s.live = s.live[:w]

	s.ticks++
}

// emit forwards an event to consumers and the CSV log. The channel send
// never blocks; a full buffer drops the event so Tick cannot stall on a
// slow consumer.
func (s *Scheduler) emit(ev StatusEvent) {
	select {
	case s.statusCh <- ev:
	default:
	}

	// CSV output
	if s.csvWriter != nil {
		rec := []string{
			ev.Time.Format(time.RFC3339Nano),
			strconv.FormatInt(s.ticks, 10),
			ev.Kind.String(),
			strconv.FormatUint(uint64(ev.TaskID), 10),
			fmt.Sprintf("%.4f", ev.Elapsed),
			fmt.Sprintf("%.4f", ev.Progress),
		}
		s.csvWriter.Write(rec)
		s.csvWriter.Flush()
	}
}

// cmp orders the cancel index by task id.
func cmp(a, b any) int {
	ka, kb := a.(TaskID), b.(TaskID)
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	default:
		return 0
	}
}
