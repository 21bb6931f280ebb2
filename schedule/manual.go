package schedule

import (
	"container/heap"
	"sync"
	"time"
)

// Manual is a [Scheduler] driven by a virtual clock. Nothing runs until
// [Manual.Advance] moves the clock; due callbacks then run on the calling
// goroutine, ordered by due time and, for equal due times, by scheduling
// order.
//
//	clock := schedule.NewManual()
//	clock.Schedule(100*time.Millisecond, func() { fmt.Println("fired") })
//	clock.Advance(99 * time.Millisecond) // nothing
//	clock.Advance(time.Millisecond)      // fired
type Manual struct {
	mu      sync.Mutex
	now     time.Duration
	seq     uint64
	pending pendingQueue
}

// NewManual returns a Manual with its clock at zero.
func NewManual() *Manual {
	return &Manual{}
}

// Schedule queues callback to run once the clock reaches Now()+wait.
// A negative wait is treated as zero. A nil callback is ignored.
func (m *Manual) Schedule(wait time.Duration, callback func()) {
	if callback == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	heap.Push(&m.pending, &pendingCall{
		due:      m.now + max(wait, 0),
		seq:      m.seq,
		callback: callback,
	})
}

// Advance moves the clock forward by d and runs every callback that has
// become due, including callbacks scheduled by callbacks run during this
// call. It returns the number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now + max(d, 0)
	m.mu.Unlock()

	fired := 0
	for {
		m.mu.Lock()
		if m.pending.Len() == 0 || m.pending[0].due > target {
			m.now = target
			m.mu.Unlock()
			return fired
		}
		next := heap.Pop(&m.pending).(*pendingCall)
		m.now = next.due
		m.mu.Unlock()

		next.callback()
		fired++
	}
}

// Now returns the virtual time elapsed since the Manual was created.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Pending returns the number of callbacks not yet run.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pending.Len()
}

type pendingCall struct {
	due      time.Duration
	seq      uint64
	callback func()
}

// pendingQueue is a min-heap on (due, seq).
type pendingQueue []*pendingCall

func (q pendingQueue) Len() int { return len(q) }

func (q pendingQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q pendingQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *pendingQueue) Push(x any) { *q = append(*q, x.(*pendingCall)) }

func (q *pendingQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
