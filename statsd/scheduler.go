package statsd

import (
	"time"

	"github.com/relex/gotils/channels"
	"github.com/relex/gotils/logger"
	"github.com/relex/statsd-client/defs"
	"github.com/relex/statsd-client/util"
)

// flushScheduler triggers periodic buffer flushes so sparse traffic still reaches the
// collector within a bounded delay
//
// Only the root client of a tree runs a scheduler; there is exactly one flush timer
// per socket no matter how many child clients exist.
type flushScheduler struct {
	logger      logger.Logger
	interval    time.Duration
	flush       func()
	stopRequest *channels.SignalAwaitable
	stopped     *channels.SignalAwaitable
}

func newFlushScheduler(parentLogger logger.Logger, interval time.Duration, flush func()) *flushScheduler {
	return &flushScheduler{
		logger:      parentLogger.WithField(defs.LabelComponent, "FlushScheduler"),
		interval:    interval,
		flush:       flush,
		stopRequest: channels.NewSignalAwaitable(),
		stopped:     channels.NewSignalAwaitable(),
	}
}

// Launch starts the scheduling loop
func (scheduler *flushScheduler) Launch() {
	go scheduler.run()
}

// Stop cancels periodic flushing and waits until the loop has exited, guaranteeing no
// tick fires during or after shutdown teardown
func (scheduler *flushScheduler) Stop() {
	scheduler.stopRequest.Signal()
	if !scheduler.stopped.Wait(defs.SchedulerStopTimeout) {
		scheduler.logger.Error("BUG: timeout waiting for scheduler to stop")
	}
}

func (scheduler *flushScheduler) run() {
	defer scheduler.stopped.Signal()
	timer := time.NewTimer(scheduler.interval)
	defer timer.Stop()
	for {
		select {
		case <-scheduler.stopRequest.Channel():
			return
		case <-timer.C:
			scheduler.flush()
			// restart counting from the end of the flush, not from the previous tick
			util.ResetTimer(timer, scheduler.interval)
		}
	}
}
