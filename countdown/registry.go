package countdown

import (
	"fmt"
	"time"
)

// DefaultLabelPrefix is used to generate a placeholder label when a task is
// added without one.
const DefaultLabelPrefix = "Timer"

// Registry owns the set of active countdown tasks and the history of
// completed ones. Ids increase monotonically and are never reused, including
// across restarts once history has been reloaded.
//
// All methods must be called from a single goroutine; the presentation loop
// is the only mutator.
type Registry struct {
	LabelPrefix string

	active  []*Task
	history []*Task
	nextID  int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		LabelPrefix: DefaultLabelPrefix,
		nextID:      1,
	}
}

// Add validates the target duration, allocates the next id, and appends a
// running task to the active set. An empty label is replaced with a
// generated placeholder.
func (r *Registry) Add(
	label, input string,
	target time.Duration,
	now time.Time,
) (*Task, error) {
	if target <= 0 {
		return nil, ErrZeroDuration
	}

	id := r.nextID
	r.nextID++

	if label == "" {
		label = fmt.Sprintf("%s %d", r.LabelPrefix, id)
	}

	t := newTask(id, label, input, target, now)
	r.active = append(r.active, t)

	return t, nil
}

// Tick sweeps the active set once, finalizes every task whose countdown has
// completed, moves it to history, and returns the newly finished tasks. A
// task is returned by exactly one Tick call, which is what keeps completion
// side effects from firing twice. A task paused before completion never
// finishes here because its frozen elapsed time stays below the target; a
// task paused at or past its target is still finalized.
func (r *Registry) Tick(now time.Time) []*Task {
	var finished []*Task

	remaining := r.active[:0]

	for _, t := range r.active {
		if t.Elapsed(now) >= t.Target && t.finish(now) {
			r.history = append(r.history, t)
			finished = append(finished, t)

			continue
		}

		remaining = append(remaining, t)
	}

	r.active = remaining

	return finished
}

// Pause freezes the identified task. Unknown, finished, and already-paused
// ids are ignored: commands originate from transient UI state that may race
// with removal.
func (r *Registry) Pause(id int, now time.Time) {
	if t := r.find(id); t != nil {
		t.Pause(now)
	}
}

// Resume restarts the identified task. Unknown and already-running ids are
// ignored.
func (r *Registry) Resume(id int, now time.Time) {
	if t := r.find(id); t != nil {
		t.Resume(now)
	}
}

// Remove deletes a task from the active set without recording it in history.
// Unknown ids are ignored.
func (r *Registry) Remove(id int) {
	for i, t := range r.active {
		if t.ID == id {
			r.active = append(r.active[:i], r.active[i+1:]...)
			return
		}
	}
}

// DeleteFromHistory permanently removes a historical entry. Unknown ids are
// ignored.
func (r *Registry) DeleteFromHistory(id int) {
	for i, t := range r.history {
		if t.ID == id {
			r.history = append(r.history[:i], r.history[i+1:]...)
			return
		}
	}
}

// Active returns the active tasks in insertion order. The slice is a copy;
// the tasks are not.
func (r *Registry) Active() []*Task {
	return append([]*Task(nil), r.active...)
}

// History returns the completed tasks in completion order. The slice is a
// copy; the tasks are not.
func (r *Registry) History() []*Task {
	return append([]*Task(nil), r.history...)
}

// LoadHistory seeds the registry with previously persisted completions and
// advances the id counter past every loaded id.
func (r *Registry) LoadHistory(tasks []*Task) {
	for _, t := range tasks {
		r.history = append(r.history, t)

		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
	}
}

// NextID returns the id the next added task will receive.
func (r *Registry) NextID() int {
	return r.nextID
}

func (r *Registry) find(id int) *Task {
	for _, t := range r.active {
		if t.ID == id {
			return t
		}
	}

	return nil
}
