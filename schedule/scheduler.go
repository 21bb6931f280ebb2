package schedule

import "time"

// Scheduler runs callback once, no earlier than wait after the call.
// Implementations must be safe for concurrent use.
type Scheduler interface {
	Schedule(wait time.Duration, callback func())
}

// SchedulerFunc adapts a plain function to [Scheduler].
type SchedulerFunc func(wait time.Duration, callback func())

// Schedule calls f(wait, callback).
func (f SchedulerFunc) Schedule(wait time.Duration, callback func()) { f(wait, callback) }
