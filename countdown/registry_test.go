package countdown_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/chime-cli/chime/countdown"
)

func TestRegistryAddRejectsZeroDuration(t *testing.T) {
	r := countdown.NewRegistry()

	_, err := r.Add("x", "0", 0, t0)
	if !errors.Is(err, countdown.ErrZeroDuration) {
		t.Fatalf("Add error = %v, want ErrZeroDuration", err)
	}

	if got := len(r.Active()); got != 0 {
		t.Errorf("active count = %d, want 0", got)
	}

	if got := r.NextID(); got != 1 {
		t.Errorf("NextID = %d, want 1 (no id burned on failed add)", got)
	}
}

func TestRegistryIdsAndLabels(t *testing.T) {
	r := countdown.NewRegistry()

	first, _ := r.Add("", "10", 10*time.Second, t0)
	second, _ := r.Add("tea", "5:00", 5*time.Minute, t0)

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", first.ID, second.ID)
	}

	if first.Label != "Timer 1" {
		t.Errorf("placeholder label = %q, want %q", first.Label, "Timer 1")
	}

	r.Remove(first.ID)

	third, _ := r.Add("", "1", time.Second, t0)
	if third.ID != 3 {
		t.Errorf("id after removal = %d, want 3 (ids are never reused)", third.ID)
	}
}

func TestRegistryInsertionOrderPreserved(t *testing.T) {
	r := countdown.NewRegistry()

	for _, label := range []string{"one", "two", "three"} {
		_, err := r.Add(label, "60", time.Minute, t0)
		if err != nil {
			t.Fatal(err)
		}
	}

	var got []string
	for _, task := range r.Active() {
		got = append(got, task.Label)
	}

	want := []string{"one", "two", "three"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("active order mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryTickFinalizesExactlyOnce(t *testing.T) {
	r := countdown.NewRegistry()

	task, _ := r.Add("tea", "10", 10*time.Second, t0)
	_, _ = r.Add("slow", "1:00:00", time.Hour, t0)

	done := t0.Add(10 * time.Second)

	finished := r.Tick(done)
	if len(finished) != 1 || finished[0].ID != task.ID {
		t.Fatalf("first Tick = %v, want exactly task %d", finished, task.ID)
	}

	if finished[0].FinishedAt != done {
		t.Errorf("FinishedAt = %v, want %v", finished[0].FinishedAt, done)
	}

	// same instant, second sweep: nothing new to finalize
	if again := r.Tick(done); len(again) != 0 {
		t.Errorf("second Tick = %v, want empty", again)
	}

	if got := len(r.Active()); got != 1 {
		t.Errorf("active count after finalization = %d, want 1", got)
	}

	history := r.History()
	if len(history) != 1 || history[0].ID != task.ID {
		t.Errorf("history = %v, want the finished task only", history)
	}
}

func TestRegistryTickFinalizesTaskPausedPastTarget(t *testing.T) {
	r := countdown.NewRegistry()

	task, _ := r.Add("tea", "1", time.Second, t0)

	// pausing after the countdown has already run out must not block
	// finalization
	r.Pause(task.ID, t0.Add(2*time.Second))

	finished := r.Tick(t0.Add(2 * time.Second))
	if len(finished) != 1 || finished[0].ID != task.ID {
		t.Fatalf("Tick = %v, want the overdue paused task", finished)
	}

	if !task.Finished() {
		t.Error("task should carry a finished timestamp")
	}

	if got := len(r.Active()); got != 0 {
		t.Errorf("active count = %d, want 0", got)
	}

	if got := len(r.History()); got != 1 {
		t.Errorf("history count = %d, want 1", got)
	}
}

func TestRegistryUnknownIdsAreNoOps(t *testing.T) {
	r := countdown.NewRegistry()

	task, _ := r.Add("tea", "10", 10*time.Second, t0)

	r.Pause(99, t0)
	r.Resume(99, t0)
	r.Remove(99)
	r.DeleteFromHistory(99)

	if got := len(r.Active()); got != 1 {
		t.Errorf("active count = %d, want 1", got)
	}

	if task.Paused() {
		t.Error("task should still be running")
	}
}

func TestRegistryPauseResumeThroughIds(t *testing.T) {
	r := countdown.NewRegistry()

	task, _ := r.Add("tea", "60", time.Minute, t0)

	r.Pause(task.ID, t0.Add(5*time.Second))

	if !task.Paused() {
		t.Fatal("task should be paused")
	}

	r.Resume(task.ID, t0.Add(25*time.Second))

	if got := task.Elapsed(t0.Add(30 * time.Second)); got != 10*time.Second {
		t.Errorf("Elapsed = %v, want 10s", got)
	}
}

func TestRegistryDeleteFromHistory(t *testing.T) {
	r := countdown.NewRegistry()

	task, _ := r.Add("tea", "1", time.Second, t0)
	r.Tick(t0.Add(time.Second))

	r.DeleteFromHistory(task.ID)

	if got := len(r.History()); got != 0 {
		t.Errorf("history count = %d, want 0", got)
	}
}

func TestRegistryLoadHistoryAdvancesIds(t *testing.T) {
	r := countdown.NewRegistry()

	r.LoadHistory([]*countdown.Task{
		countdown.Restore(2, "old", "10", 10*time.Second, t0),
		countdown.Restore(7, "older", "20", 20*time.Second, t0),
	})

	if got := r.NextID(); got != 8 {
		t.Fatalf("NextID after load = %d, want 8", got)
	}

	task, _ := r.Add("new", "30", 30*time.Second, t0)
	if task.ID != 8 {
		t.Errorf("id after load = %d, want 8", task.ID)
	}
}
