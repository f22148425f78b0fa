// Package gameplay runs the map page: character movement, camera follow and zone interactions.
package gameplay

import (
	"time"

	"github.com/zyedidia/generic/heap"
)

type timer struct {
	due time.Duration
	seq uint64
	fn  func()
}

// timerQueue runs callbacks once the session clock reaches their due time.
// Callbacks due at the same instant run in scheduling order.
type timerQueue struct {
	now   time.Duration
	seq   uint64
	queue *heap.Heap[*timer]
}

func newTimerQueue() *timerQueue {
	return &timerQueue{
		queue: heap.New(func(a, b *timer) bool {
			if a.due != b.due {
				return a.due < b.due
			}
			return a.seq < b.seq
		}),
	}
}

// After schedules fn to run d after the current clock.
func (q *timerQueue) After(d time.Duration, fn func()) {
	q.seq++
	q.queue.Push(&timer{due: q.now + d, seq: q.seq, fn: fn})
}

// Advance moves the clock forward and runs everything that became due.
// Callbacks may schedule more timers; those run in the same call if they
// are already due.
func (q *timerQueue) Advance(dt time.Duration) {
	q.now += dt
	for {
		next, ok := q.queue.Peek()
		if !ok || next.due > q.now {
			return
		}
		q.queue.Pop()
		next.fn()
	}
}

// Len returns the number of pending timers.
func (q *timerQueue) Len() int {
	return q.queue.Size()
}
