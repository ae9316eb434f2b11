package history

import "time"

// CancelFunc stops a scheduled callback. Calling it after the callback ran,
// or more than once, is harmless.
type CancelFunc func()

// Scheduler runs fn once after delay.
type Scheduler interface {
	ScheduleOnce(delay time.Duration, fn func()) CancelFunc
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(delay time.Duration, fn func()) CancelFunc

func (f SchedulerFunc) ScheduleOnce(delay time.Duration, fn func()) CancelFunc {
	return f(delay, fn)
}

// TimerScheduler schedules callbacks on the runtime timer.
var TimerScheduler Scheduler = SchedulerFunc(func(delay time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(delay, fn)
	return func() { t.Stop() }
})

// Navigator receives the location a command asks the UI to show.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }
