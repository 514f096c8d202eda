package countdown

import "time"

// State identifies where a task is in its lifecycle.
type State string

const (
	StateRunning  State = "running"
	StatePaused   State = "paused"
	StateFinished State = "finished"
)

// Task is a single countdown timer. Tasks are owned exclusively by a
// Registry and mutated from one goroutine only.
//
// Elapsed time accounting: accumulated holds the active time consumed before
// the current running interval, and runningSince marks the start of that
// interval. While paused, runningSince is zero and elapsed time is frozen at
// accumulated. The pair guarantees that pausing suspends accrual entirely
// and that resuming does not charge the pause gap against the countdown.
type Task struct {
	CreatedAt  time.Time
	FinishedAt time.Time
	Label      string
	Input      string
	Target     time.Duration
	ID         int

	accumulated  time.Duration
	runningSince time.Time
	paused       bool
}

// newTask starts a running task. Validation of the target duration happens
// in Registry.Add.
func newTask(id int, label, input string, target time.Duration, now time.Time) *Task {
	return &Task{
		ID:           id,
		Label:        label,
		Input:        input,
		Target:       target,
		CreatedAt:    now,
		runningSince: now,
	}
}

// Restore rebuilds a completed task from its persisted fields. Transient
// state is never persisted, so the task reads as complete with its full
// target consumed.
func Restore(
	id int,
	label, input string,
	target time.Duration,
	createdAt time.Time,
) *Task {
	return &Task{
		ID:          id,
		Label:       label,
		Input:       input,
		Target:      target,
		CreatedAt:   createdAt,
		accumulated: target,
		paused:      true,
	}
}

// Pause freezes elapsed time accrual. Pausing an already-paused or finished
// task is a no-op.
func (t *Task) Pause(now time.Time) {
	if t.paused || t.Finished() {
		return
	}

	t.accumulated += now.Sub(t.runningSince)
	t.runningSince = time.Time{}
	t.paused = true
}

// Resume restarts elapsed time accrual without charging the pause gap.
// Resuming an already-running or finished task is a no-op.
func (t *Task) Resume(now time.Time) {
	if !t.paused || t.Finished() {
		return
	}

	t.runningSince = now
	t.paused = false
}

// Elapsed returns the cumulative active time consumed by the countdown.
func (t *Task) Elapsed(now time.Time) time.Duration {
	if t.Finished() {
		return t.Target
	}

	if t.paused {
		return t.accumulated
	}

	return t.accumulated + now.Sub(t.runningSince)
}

// Remaining returns the time left until completion, floored at zero.
func (t *Task) Remaining(now time.Time) time.Duration {
	r := t.Target - t.Elapsed(now)
	if r < 0 {
		return 0
	}

	return r
}

// Fraction returns the completion fraction in [0, 1].
func (t *Task) Fraction(now time.Time) float64 {
	if t.Target <= 0 {
		return 1
	}

	f := float64(t.Elapsed(now)) / float64(t.Target)
	if f > 1 {
		return 1
	}

	if f < 0 {
		return 0
	}

	return f
}

// State reports the task's current lifecycle state. Completion is detected
// lazily here; finalization (FinishedAt, history) is the registry's job.
func (t *Task) State(now time.Time) State {
	switch {
	case t.Finished() || t.Elapsed(now) >= t.Target:
		return StateFinished
	case t.paused:
		return StatePaused
	default:
		return StateRunning
	}
}

// Paused reports whether the task is currently paused.
func (t *Task) Paused() bool {
	return t.paused
}

// Finished reports whether the task has been finalized.
func (t *Task) Finished() bool {
	return !t.FinishedAt.IsZero()
}

// finish marks the task complete. It reports whether this call performed the
// transition, so finalization side effects fire exactly once.
func (t *Task) finish(now time.Time) bool {
	if t.Finished() {
		return false
	}

	t.FinishedAt = now
	t.accumulated = t.Target
	t.runningSince = time.Time{}
	t.paused = false

	return true
}
