package defs

import (
	"time"
)

var (
	// BufferFlushInterval defines how often the root client flushes buffered metric lines
	// regardless of how full the buffer is
	//
	// The value bounds the latency of buffered metrics under sparse traffic
	BufferFlushInterval = 1000 * time.Millisecond

	// DialTimeout is for establishing a TCP connection to the metrics collector
	//
	// UDP and unix datagram sockets are connectionless and unaffected
	DialTimeout = 10 * time.Second

	// SendTimeout is the write deadline for one TCP send; datagram sends never block
	SendTimeout = 10 * time.Second

	// CloseInflightPollInterval defines how often Close checks the in-flight write counter
	// while draining
	CloseInflightPollInterval = 50 * time.Millisecond

	// SchedulerStopTimeout is how long Close waits for the flush scheduler goroutine to
	// confirm it has stopped before proceeding with the drain flush
	SchedulerStopTimeout = 10 * time.Second

	// CloseInflightMaxChecks is the number of in-flight checks before Close gives up waiting
	// and proceeds to close the socket anyway
	CloseInflightMaxChecks = 10
)

// For testing and experiments
const (
	TestReadTimeout = 5 * time.Second
)

// EnableTestMode turns on test mode with very short timeouts
func EnableTestMode() {
	BufferFlushInterval = 50 * time.Millisecond
	DialTimeout = 1 * time.Second
	SendTimeout = 1 * time.Second
	CloseInflightPollInterval = 5 * time.Millisecond
}
