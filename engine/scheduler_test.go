package engine

import (
	"testing"
	"time"
)

func TestSchedulerRunsInDueOrder(t *testing.T) {
	var s Scheduler
	var order []string
	add := func(name string, due time.Duration) {
		s.Schedule(Task{Name: name, Due: due, Run: func() { order = append(order, name) }})
	}
	add("late", 300*time.Millisecond)
	add("early", 100*time.Millisecond)
	add("mid", 200*time.Millisecond)

	if n := s.RunDue(50*time.Millisecond, nil); n != 0 {
		t.Fatalf("ran %d tasks before due", n)
	}
	if n := s.RunDue(250*time.Millisecond, nil); n != 2 {
		t.Fatalf("ran %d tasks, want 2", n)
	}
	if len(order) != 2 || order[0] != "early" || order[1] != "mid" {
		t.Errorf("order = %v", order)
	}
	if s.Pending() != 1 {
		t.Errorf("pending = %d, want 1", s.Pending())
	}
}

func TestSchedulerTokenGuard(t *testing.T) {
	var s Scheduler
	token := uint64(1)
	fired := 0
	s.Schedule(Task{Due: time.Second, Token: token, Phase: PhaseResolving, Run: func() { fired++ }})

	token++ // reset or new toss
	valid := func(task Task) bool { return task.Token == token }

	if n := s.RunDue(2*time.Second, valid); n != 0 || fired != 0 {
		t.Errorf("stale task ran: n=%d fired=%d", n, fired)
	}
	if s.Pending() != 0 {
		t.Errorf("stale task kept: %d", s.Pending())
	}
}

func TestSchedulerEarlierTaskInvalidatesLater(t *testing.T) {
	var s Scheduler
	phase := PhaseRolling
	fired := 0
	valid := func(task Task) bool { return task.Phase == phase }

	// Duplicate settle confirmations: only the first may act
	for i := 0; i < 2; i++ {
		s.Schedule(Task{Due: 100 * time.Millisecond, Phase: PhaseRolling, Run: func() {
			fired++
			phase = PhaseResolving
		}})
	}
	s.RunDue(time.Second, valid)
	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
}

func TestSchedulerDefersTasksScheduledDuringRun(t *testing.T) {
	var s Scheduler
	inner := false
	s.Schedule(Task{Due: 0, Run: func() {
		s.Schedule(Task{Due: 0, Run: func() { inner = true }})
	}})

	s.RunDue(time.Second, nil)
	if inner {
		t.Fatal("task scheduled during run executed in the same pass")
	}
	s.RunDue(time.Second, nil)
	if !inner {
		t.Error("deferred task never ran")
	}
}
