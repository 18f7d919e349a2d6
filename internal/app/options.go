package app

import "time"

// Options carries the display parameters for the GUI loop.
type Options struct {
	Scale      int
	TPS        int
	Seed       int64
	Cycle      bool
	CycleDelay time.Duration
}
