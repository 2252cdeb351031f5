package util

import (
	"time"
)

// ResetTimer resets the given timer properly, draining a pending tick if the timer
// already fired
func ResetTimer(timer *time.Timer, duration time.Duration) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(duration)
}
