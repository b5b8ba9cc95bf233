package common

import (
	"time"
)

// This stopwatch keeps track of time. You can set a timeout for it,
// make it start counting time, and ask it if the timeout has been reached
type Stopwatch struct {
	Timeout   time.Duration
	startTime time.Time
	Running   bool
}

func CreateStopwatch(timeout time.Duration) Stopwatch {
	return Stopwatch{timeout, time.Time{}, false}
}

// StartStopwatch creates a stopwatch that is already running
func StartStopwatch(timeout time.Duration) Stopwatch {
	s := CreateStopwatch(timeout)
	s.Start()
	return s
}

func (s *Stopwatch) Start() {
	s.Running = true
	s.startTime = time.Now()
}

func (s *Stopwatch) Stop() {
	s.Running = false
}

// Elapsed is the time since the stopwatch was started
func (s *Stopwatch) Elapsed() time.Duration {
	return time.Since(s.startTime)
}

// Return the time elapsed since this stopwatch
// stopped (reached its timeout).
// Note that if the number is negative, the timeout still
// has not been reached
func (s *Stopwatch) TimeStopped() time.Duration {
	currentTime := time.Now()
	return currentTime.Sub(s.startTime.Add(s.Timeout))
}

// Expired reports whether a running stopwatch went past its timeout
func (s *Stopwatch) Expired() bool {
	return s.Running && s.TimeStopped() > 0
}
