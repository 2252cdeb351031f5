package util

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTrackedWaitGroup(t *testing.T) {
	twg := &TrackedWaitGroup{}
	assert.Equal(t, 0, twg.Peek())

	twg.Add(1)
	twg.Add(1)
	twg.Add(1)
	assert.Equal(t, 3, twg.Peek())
	twg.Done()
	assert.Equal(t, 2, twg.Peek())

	// concurrent completions observed by polling, the way a shutdown drain does
	var start sync.WaitGroup
	start.Add(1)
	go func() {
		start.Wait()
		twg.Done()
		twg.Done()
	}()
	start.Done()

	for i := 0; i < 100 && twg.Peek() > 0; i++ {
		time.Sleep(time.Millisecond)
	}
	assert.Equal(t, 0, twg.Peek())

	twg.Wait()
}

func TestTrackedWaitGroupForget(t *testing.T) {
	twg := &TrackedWaitGroup{}
	twg.Add(2)
	assert.Equal(t, 2, twg.Forget())
	assert.Equal(t, 0, twg.Peek())

	// completions arriving after Forget do not drive the counter negative
	twg.Done()
	twg.Done()
	assert.Equal(t, 0, twg.Peek())
	twg.Wait()
}
