// Package timer runs game callbacks on a virtual clock.
//
// The clock only moves when Advance is called, so a frame loop, a terminal
// ticker or a test can all drive the same callbacks deterministically.
// Every task is bound to a context: once the context is done the task is
// dropped without running.
package timer

import (
	"container/heap"
	"context"
	"time"
)

// Task is a scheduled callback. Cancel is safe to call more than once.
type Task struct {
	ctx      context.Context
	due      time.Duration
	interval time.Duration
	seq      uint64
	fn       func()
	canceled bool
	index    int
}

func (t *Task) Cancel() {
	if t != nil {
		t.canceled = true
	}
}

// Active reports whether the task will still run.
func (t *Task) Active() bool {
	return t != nil && !t.canceled && t.ctx.Err() == nil
}

// Scheduler owns the virtual clock. It is not safe for concurrent use; a
// session's scheduler belongs to the goroutine running its frame loop.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue taskQueue
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of tasks still queued, including cancelled ones
// that have not been swept yet.
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// After runs fn once, delay after the current virtual time.
func (s *Scheduler) After(ctx context.Context, delay time.Duration, fn func()) *Task {
	if delay < 0 {
		delay = 0
	}
	return s.push(ctx, s.now+delay, 0, fn)
}

// Every runs fn each interval until ctx is done or the task is cancelled.
func (s *Scheduler) Every(ctx context.Context, interval time.Duration, fn func()) *Task {
	if interval <= 0 {
		panic("timer: Every needs a positive interval")
	}
	return s.push(ctx, s.now+interval, interval, fn)
}

func (s *Scheduler) push(ctx context.Context, due, interval time.Duration, fn func()) *Task {
	s.seq++
	t := &Task{ctx: ctx, due: due, interval: interval, seq: s.seq, fn: fn}
	heap.Push(&s.queue, t)
	return t
}

// Advance moves the clock forward by dt and runs every task that falls due,
// in due-time order. Tasks scheduled by callbacks run in the same call when
// they fall inside the window. Periodic tasks fire once per elapsed interval.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	end := s.now + dt
	for len(s.queue) > 0 {
		next := s.queue[0]
		if next.due > end {
			break
		}
		heap.Pop(&s.queue)
		if !next.Active() {
			continue
		}
		s.now = next.due
		if next.interval > 0 {
			next.due += next.interval
			s.seq++
			next.seq = s.seq
			heap.Push(&s.queue, next)
		}
		next.fn()
	}
	s.now = end
}

// Reset drops every queued task and rewinds nothing; the clock keeps its value
// so durations measured across a reset stay monotonic.
func (s *Scheduler) Reset() {
	for _, t := range s.queue {
		t.canceled = true
	}
	s.queue = s.queue[:0]
}

type taskQueue []*Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].due == q[j].due {
		return q[i].seq < q[j].seq
	}
	return q[i].due < q[j].due
}

func (q taskQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *taskQueue) Push(x any) {
	t := x.(*Task)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
