package util

import (
	"sync"
	"sync/atomic"
)

// TrackedWaitGroup is a sync.WaitGroup whose counter can be read at any time
//
// It tracks in-flight socket writes: Add before a write is issued, Done when its
// completion is observed. Peek supports polling during shutdown drain.
type TrackedWaitGroup struct {
	wg    sync.WaitGroup
	count int64
}

// Add increments the counter by delta
func (twg *TrackedWaitGroup) Add(delta int) {
	twg.wg.Add(delta)
	atomic.AddInt64(&twg.count, int64(delta))
}

// Done decrements the counter by one, stopping at zero if Forget has discarded the
// remaining count
func (twg *TrackedWaitGroup) Done() {
	twg.wg.Done()
	for {
		current := atomic.LoadInt64(&twg.count)
		if current <= 0 {
			return
		}
		if atomic.CompareAndSwapInt64(&twg.count, current, current-1) {
			return
		}
	}
}

// Forget zeroes the counter and returns the discarded amount
//
// The underlying WaitGroup is untouched: stragglers must still call Done, which no
// longer moves the counter. For shutdown paths that give up waiting on stuck
// operations but want Peek to read zero from then on.
func (twg *TrackedWaitGroup) Forget() int {
	return int(atomic.SwapInt64(&twg.count, 0))
}

// Peek reads the current counter value
func (twg *TrackedWaitGroup) Peek() int {
	return int(atomic.LoadInt64(&twg.count))
}

// Wait blocks until the counter reaches zero
func (twg *TrackedWaitGroup) Wait() {
	twg.wg.Wait()
}
