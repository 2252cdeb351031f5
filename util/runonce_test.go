package util

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunOnce(t *testing.T) {
	numCalled := int64(0)
	numEntered := int64(0)

	f := NewRunOnce(func() {
		atomic.AddInt64(&numCalled, 1)
	})

	wg := &sync.WaitGroup{}
	for i := 0; i < 1000; i++ {
		wg.Add(1)
		go func() {
			if f() {
				atomic.AddInt64(&numEntered, 1)
			}
			wg.Done()
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), numCalled)
	assert.Equal(t, int64(1), numEntered)
}
