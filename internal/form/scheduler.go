package form

import "time"

// Timer is a pending scheduled call.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. The controller uses it for banner expiry.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type clockScheduler struct{}

func (clockScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealScheduler is backed by time.AfterFunc.
var RealScheduler Scheduler = clockScheduler{}
