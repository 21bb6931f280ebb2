package functions

import (
	"slices"
	"sync"
	"time"

	"github.com/hasbyte1/go-fnutils/schedule"
)

var defaultScheduler struct {
	mu sync.RWMutex
	s  schedule.Scheduler
}

func init() {
	defaultScheduler.s = schedule.NewTimer(schedule.DefaultTimerOptions())
}

// SetDefaultScheduler replaces the scheduler used by [Delay] and returns
// the previous one. A nil s restores a wall-clock [schedule.Timer].
//
//	clock := schedule.NewManual()
//	prev := functions.SetDefaultScheduler(clock)
//	defer functions.SetDefaultScheduler(prev)
func SetDefaultScheduler(s schedule.Scheduler) schedule.Scheduler {
	if s == nil {
		s = schedule.NewTimer(schedule.DefaultTimerOptions())
	}
	defaultScheduler.mu.Lock()
	defer defaultScheduler.mu.Unlock()
	prev := defaultScheduler.s
	defaultScheduler.s = s
	return prev
}

// DefaultScheduler returns the scheduler used by [Delay].
func DefaultScheduler() schedule.Scheduler {
	defaultScheduler.mu.RLock()
	defer defaultScheduler.mu.RUnlock()
	return defaultScheduler.s
}

// Delay schedules exactly one call of fn.Call(args...) no earlier than wait
// from now, on the default scheduler. It returns immediately; there is no
// handle and no way to cancel.
//
//	functions.Delay(functions.Func[any](func(args ...any) any {
//	    fmt.Println(args...)
//	    return nil
//	}), 500*time.Millisecond, "a", "b")
func Delay[R any](fn Callable[R], wait time.Duration, args ...any) {
	DelayOn(DefaultScheduler(), fn, wait, args...)
}

// DelayOn is [Delay] on an explicit scheduler. A nil fn or scheduler makes
// it a no-op.
func DelayOn[R any](s schedule.Scheduler, fn Callable[R], wait time.Duration, args ...any) {
	if s == nil || fn == nil {
		return
	}
	captured := slices.Clone(args)
	s.Schedule(wait, func() {
		fn.Call(captured...)
	})
}
