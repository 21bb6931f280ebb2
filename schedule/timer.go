package schedule

import (
	"time"

	"go.uber.org/zap"
)

// TimerOptions configures a [Timer].
type TimerOptions struct {
	// Logger receives debug entries for scheduled callbacks and error
	// entries for recovered panics. nil disables logging.
	Logger *zap.Logger
}

// DefaultTimerOptions returns options with logging disabled.
func DefaultTimerOptions() TimerOptions {
	return TimerOptions{Logger: zap.NewNop()}
}

// Timer schedules callbacks with [time.AfterFunc]. Each callback runs on its
// own goroutine.
type Timer struct {
	logger *zap.Logger
}

// NewTimer returns a Timer configured by opts.
func NewTimer(opts TimerOptions) *Timer {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Timer{logger: logger}
}

// Schedule runs callback after wait. A negative wait is treated as zero.
// A nil callback is ignored.
func (t *Timer) Schedule(wait time.Duration, callback func()) {
	if callback == nil {
		return
	}
	wait = max(wait, 0)
	t.logger.Debug("callback scheduled", zap.Duration("wait", wait))
	time.AfterFunc(wait, func() {
		defer func() {
			if r := recover(); r != nil {
				t.logger.Error("scheduled callback panicked",
					zap.Duration("wait", wait),
					zap.Any("panic", r),
				)
			}
		}()
		callback()
	})
}
