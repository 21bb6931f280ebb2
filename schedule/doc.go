// Package schedule provides the deferred-execution capability used by
// functions.Delay: run a callback once, no earlier than a given duration
// from now.
//
// Two implementations ship with this package:
//
//   - [Timer] runs callbacks on runtime timers. A panicking callback is
//     recovered and logged instead of taking the process down.
//   - [Manual] keeps a virtual clock that only moves when [Manual.Advance]
//     is called, which makes delayed code deterministic in tests.
//
// Scheduling is fire-and-forget: there is no handle and no cancellation.
package schedule
