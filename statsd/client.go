// Package statsd implements a buffered statsd/dogstatsd client: metric lines are
// batched under a byte-size budget, flushed on a timer and dispatched to the collector
// over UDP, TCP or a unix datagram socket.
package statsd

import (
	"math/rand"
	"sync"
	"time"

	"github.com/relex/gotils/logger"
	"github.com/relex/gotils/promexporter/promext"
	"github.com/relex/gotils/promexporter/promreg"
	"github.com/relex/statsd-client/defs"
	"github.com/relex/statsd-client/line"
	"github.com/relex/statsd-client/transport"
	"github.com/relex/statsd-client/util"
)

// Client sends metrics to a statsd collector
//
// A root client owns the socket, the buffer and the flush timer. Child clients created
// by NewChildClient share all three by reference and only overlay naming and tags, so
// a whole tree costs one socket and one timer. All methods are safe for concurrent use.
type Client struct {
	logger     logger.Logger
	prefix     string
	suffix     string
	tags       []string
	sampleRate float64
	telegraf   bool
	buffer     *messageBuffer // nil when buffering is disabled
	sendMutex  *sync.Mutex    // held across buffer drain and dispatch, see sendLine
	dispatcher *transport.Dispatcher
	scheduler  *flushScheduler // root client only
	metrics    *clientMetrics
	randFloat  func() float64
	isChild    bool
	closeOnce  util.RunOnce
	closeErr   error
}

// NewClient creates a root client and opens its socket
//
// A dial failure does not fail construction; it is cached and replayed on every send
// (see transport.NewDispatcher). The flush scheduler starts only when buffering is
// enabled.
func NewClient(parentLogger logger.Logger, config Config, metricCreator promreg.MetricCreator) (*Client, error) {
	if err := config.VerifyConfig(); err != nil {
		return nil, err
	}
	config = config.withDefaults()

	clogger := parentLogger.WithField(defs.LabelComponent, "StatsdClient")
	client := &Client{
		logger:     clogger,
		prefix:     config.Prefix,
		suffix:     config.Suffix,
		tags:       config.GlobalTags,
		sampleRate: config.SampleRate,
		telegraf:   config.Telegraf,
		dispatcher: transport.NewDispatcher(clogger, config.Endpoint, config.Mock, config.ErrorHandler, metricCreator),
		metrics:    newClientMetrics(metricCreator),
		randFloat:  rand.Float64,
	}
	client.closeOnce = util.NewRunOnce(client.drainAndClose)

	if config.MaxBufferSize > 0 {
		client.buffer = newMessageBuffer(int(config.MaxBufferSize.Bytes()))
		client.sendMutex = &sync.Mutex{}
		client.scheduler = newFlushScheduler(clogger, config.BufferFlushInterval, func() {
			client.flush(client.metrics.flushedByTimer, nil)
		})
		client.scheduler.Launch()
	}
	return client, nil
}

// Increment counts one occurrence, e.g. "my.stat:1|c"
func (client *Client) Increment(name string, tags ...string) {
	client.Count(name, 1, client.sampleRate, tags, nil)
}

// Decrement counts one removal, e.g. "my.stat:-1|c"
func (client *Client) Decrement(name string, tags ...string) {
	client.Count(name, -1, client.sampleRate, tags, nil)
}

// Count adds a value to a counter with full control over rate, tags and completion
func (client *Client) Count(name string, value int64, sampleRate float64, tags []string, callback transport.Callback) {
	client.SendMetric(name, line.FormatInt(value), line.TypeCounter, sampleRate, tags, callback)
}

// Gauge records the current value of something
func (client *Client) Gauge(name string, value float64, tags ...string) {
	client.SendMetric(name, line.FormatFloat(value), line.TypeGauge, client.sampleRate, tags, nil)
}

// Timing records a duration in milliseconds
func (client *Client) Timing(name string, duration time.Duration, tags ...string) {
	ms := float64(duration) / float64(time.Millisecond)
	client.SendMetric(name, line.FormatFloat(ms), line.TypeTiming, client.sampleRate, tags, nil)
}

// TimingMs records a duration already expressed in milliseconds
func (client *Client) TimingMs(name string, ms float64, tags ...string) {
	client.SendMetric(name, line.FormatFloat(ms), line.TypeTiming, client.sampleRate, tags, nil)
}

// Histogram samples a value into a server-side histogram
func (client *Client) Histogram(name string, value float64, tags ...string) {
	client.SendMetric(name, line.FormatFloat(value), line.TypeHistogram, client.sampleRate, tags, nil)
}

// Distribution samples a value into a server-side global distribution
func (client *Client) Distribution(name string, value float64, tags ...string) {
	client.SendMetric(name, line.FormatFloat(value), line.TypeDistribution, client.sampleRate, tags, nil)
}

// Set counts unique occurrences of a value per flush interval on the server
func (client *Client) Set(name string, value string, tags ...string) {
	client.SendMetric(name, value, line.TypeSet, client.sampleRate, tags, nil)
}

// Unique is an alias of Set
func (client *Client) Unique(name string, value string, tags ...string) {
	client.Set(name, value, tags...)
}

// SendMetric builds and sends one metric line of the given type
//
// This is the generic path behind all typed helpers. Losing the sample-rate coin flip
// completes successfully without sending; skipping is routine behavior, not an error.
func (client *Client) SendMetric(name string, value string, metricType string, sampleRate float64,
	tags []string, callback transport.Callback) {
	if sampleRate < 1 && client.randFloat() >= sampleRate {
		client.metrics.samplingSkipsTotal.Inc()
		if callback != nil {
			callback(nil)
		}
		return
	}
	metricLine := line.BuildMetric(client.prefix, name, client.suffix, value, metricType,
		sampleRate, line.MergeTags(client.tags, tags), client.telegraf)
	client.sendLine(metricLine, callback)
}

// Event sends a dogstatsd event; not representable in telegraf format
func (client *Client) Event(event line.Event, tags []string, callback transport.Callback) {
	if client.telegraf {
		client.dispatcher.ReportError(ErrNoEventSupport, callback)
		return
	}
	client.sendLine(line.BuildEvent(event, line.MergeTags(client.tags, tags)), callback)
}

// ServiceCheck sends a dogstatsd service check; not representable in telegraf format
func (client *Client) ServiceCheck(check line.ServiceCheck, tags []string, callback transport.Callback) {
	if client.telegraf {
		client.dispatcher.ReportError(ErrNoServiceCheckSupport, callback)
		return
	}
	client.sendLine(line.BuildServiceCheck(check, line.MergeTags(client.tags, tags)), callback)
}

// Flush dispatches all currently buffered lines regardless of the byte budget
func (client *Client) Flush(callback transport.Callback) {
	client.flush(client.metrics.flushedManually, callback)
}

// CapturedPayloads returns payloads recorded in mock mode, in send order
func (client *Client) CapturedPayloads() []string {
	return client.dispatcher.CapturedPayloads()
}

// sendLine enqueues one finished line, or dispatches it immediately when buffering is
// disabled
//
// sendMutex stays held from the buffer drain until the drained payload reaches the
// dispatcher. Without it a concurrent flush could take a newer line out of the buffer
// and dispatch it before an older overflow payload, reordering lines on the wire.
func (client *Client) sendLine(metricLine string, callback transport.Callback) {
	if client.buffer == nil {
		client.dispatcher.SendMessage([]byte(metricLine), callback)
		return
	}
	client.metrics.enqueuedLinesTotal.Inc()
	client.sendMutex.Lock()
	payload := client.buffer.append(metricLine)
	client.metrics.bufferedBytes.Set(int64(client.buffer.pendingBytes()))
	if payload != nil {
		// the existing content exceeded the budget: it goes out now carrying this
		// caller's callback, while the new line starts the next batch
		client.metrics.flushedBySize.Inc()
		client.dispatcher.SendMessage(payload, callback)
		client.sendMutex.Unlock()
		return
	}
	client.sendMutex.Unlock()
	// committed to the batch; earlier callers already completed the same way
	if callback != nil {
		callback(nil)
	}
}

func (client *Client) flush(trigger promext.RWCounter, callback transport.Callback) {
	if client.buffer == nil {
		if callback != nil {
			callback(nil)
		}
		return
	}
	client.sendMutex.Lock()
	payload := client.buffer.takeAll()
	client.metrics.bufferedBytes.Set(0)
	if len(payload) == 0 {
		client.sendMutex.Unlock()
		// flushing an empty buffer performs no socket write
		if callback != nil {
			callback(nil)
		}
		return
	}
	trigger.Inc()
	client.dispatcher.SendMessage(payload, callback)
	client.sendMutex.Unlock()
}
