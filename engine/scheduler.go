package engine

import (
	"sort"
	"time"
)

// Task is a deferred transition on the controller's game clock
// Token and Phase capture the controller state at scheduling time
type Task struct {
	Name  string
	Due   time.Duration
	Token uint64
	Phase Phase
	Run   func()
}

// Scheduler holds deferred tasks until their due time
// There is no cancel API: stale tasks are discarded by the validity check when they come due
type Scheduler struct {
	tasks []Task
}

// Schedule queues a task
func (s *Scheduler) Schedule(t Task) {
	s.tasks = append(s.tasks, t)
}

// RunDue removes every task due at or before now and runs those still valid, in due order
// Validity is evaluated immediately before each run so an earlier task can invalidate a later one
// Tasks scheduled by a running task wait for the next call
// Returns the number of tasks run
func (s *Scheduler) RunDue(now time.Duration, valid func(Task) bool) int {
	var due []Task
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.Due <= now {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	if len(due) == 0 {
		return 0
	}

	sort.SliceStable(due, func(i, j int) bool { return due[i].Due < due[j].Due })

	ran := 0
	for _, t := range due {
		if valid != nil && !valid(t) {
			continue
		}
		t.Run()
		ran++
	}
	return ran
}

// Pending returns the number of queued tasks, valid or not
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}
