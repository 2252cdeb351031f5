package transport

import (
	"net"
	"sync"
	"time"

	"github.com/relex/gotils/logger"
	"github.com/relex/gotils/promexporter/promreg"
	"github.com/relex/statsd-client/defs"
	"github.com/relex/statsd-client/util"
)

// Callback observes the completion of one send or close, with nil on success
//
// Completion means the payload was accepted by the local socket layer, not that the
// collector received it; the protocol is fire-and-forget.
type Callback func(err error)

// Dispatcher performs socket writes for finished payloads and owns the socket lifecycle
//
// A dispatcher is shared by reference between a root client and all of its child
// clients; only the root triggers Close. Errors resolve through a fixed chain: the
// caller's callback if any, else the configured error handler, else a warning on the
// dispatcher's own logger.
type Dispatcher struct {
	logger       logger.Logger
	endpoint     Endpoint
	conn         net.Conn
	dialErr      error // cached dial/resolution failure, replayed on every send
	mock         bool
	errorHandler Callback
	inflight     util.TrackedWaitGroup
	metrics      dispatcherMetrics
	closed       bool
	closedMutex  sync.Mutex
	captureMutex sync.Mutex
	captured     []string
}

// NewDispatcher opens the endpoint socket and wraps it for sending
//
// In mock mode no socket is opened and payloads are captured for inspection. A dial
// failure does not fail construction: the error is cached and every subsequent send
// reports it immediately without touching the network, so a permanently broken
// endpoint fails fast and consistently.
func NewDispatcher(parentLogger logger.Logger, endpoint Endpoint, mock bool, errorHandler Callback,
	metricCreator promreg.MetricCreator) *Dispatcher {
	protocol := endpoint.Protocol
	if protocol == "" {
		protocol = defs.ProtocolUDP
	}
	dispatcher := &Dispatcher{
		logger: parentLogger.WithFields(logger.Fields{
			defs.LabelComponent: "TransportDispatcher",
			defs.LabelProtocol:  protocol,
			defs.LabelRemote:    endpoint.Address(),
		}),
		endpoint:     endpoint,
		mock:         mock,
		errorHandler: errorHandler,
		metrics:      newDispatcherMetrics(metricCreator, protocol),
	}
	if mock {
		return dispatcher
	}
	conn, err := Dial(endpoint)
	if err != nil {
		dispatcher.logger.Warnf("failed to open socket: %s", err.Error())
		dispatcher.dialErr = err
	} else {
		dispatcher.conn = conn
	}
	return dispatcher
}

// SendMessage writes one payload to the socket and completes the callback
//
// Empty payloads and mock mode complete immediately without I/O. TCP payloads get a
// trailing newline appended if missing, since stream framing depends on it; datagram
// payloads are written as-is in one atomic send.
func (dispatcher *Dispatcher) SendMessage(payload []byte, callback Callback) {
	if len(payload) == 0 {
		complete(callback)
		return
	}
	if dispatcher.mock {
		dispatcher.capture(payload)
		complete(callback)
		return
	}
	if dispatcher.dialErr != nil {
		dispatcher.metrics.nonNetworkErrorsTotal.Inc()
		dispatcher.ReportError(dispatcher.dialErr, callback)
		return
	}
	if dispatcher.Closed() {
		dispatcher.metrics.nonNetworkErrorsTotal.Inc()
		dispatcher.ReportError(&Error{Op: "send", Err: net.ErrClosed}, callback)
		return
	}

	// the gauge mirrors the counter rather than counting on its own, so it stays at
	// zero if Close gives up and forgets stuck writes
	dispatcher.inflight.Add(1)
	dispatcher.metrics.inflightWrites.Set(int64(dispatcher.inflight.Peek()))
	defer func() {
		dispatcher.inflight.Done()
		dispatcher.metrics.inflightWrites.Set(int64(dispatcher.inflight.Peek()))
	}()

	var err error
	if dispatcher.endpoint.Protocol == defs.ProtocolTCP {
		if payload[len(payload)-1] != '\n' {
			payload = append(payload, '\n')
		}
		if derr := dispatcher.conn.SetWriteDeadline(time.Now().Add(defs.SendTimeout)); derr != nil {
			err = derr
		} else {
			err = writeAll(dispatcher.conn, payload)
		}
	} else {
		_, err = dispatcher.conn.Write(payload)
	}
	if err != nil {
		if util.IsNetworkError(err) {
			dispatcher.metrics.networkErrorsTotal.Inc()
		} else {
			dispatcher.metrics.nonNetworkErrorsTotal.Inc()
		}
		dispatcher.ReportError(&Error{Op: "send", Err: err}, callback)
		return
	}
	dispatcher.metrics.OnSent(len(payload))
	complete(callback)
}

// InflightWrites reads the current number of issued but uncompleted writes
func (dispatcher *Dispatcher) InflightWrites() int {
	return dispatcher.inflight.Peek()
}

// Closed tells whether Close has begun; sends are rejected from that point on
func (dispatcher *Dispatcher) Closed() bool {
	dispatcher.closedMutex.Lock()
	defer dispatcher.closedMutex.Unlock()
	return dispatcher.closed
}

// Close waits for in-flight writes to complete and then closes the socket
//
// Waiting is bounded: after defs.CloseInflightMaxChecks polls the socket is closed
// anyway rather than hanging shutdown on a stuck write. Repeated calls are no-ops and
// a close failure is reported at most once.
func (dispatcher *Dispatcher) Close(callback Callback) {
	dispatcher.closedMutex.Lock()
	alreadyClosed := dispatcher.closed
	dispatcher.closed = true
	dispatcher.closedMutex.Unlock()
	if alreadyClosed {
		complete(callback)
		return
	}

	for attempt := 0; attempt < defs.CloseInflightMaxChecks; attempt++ {
		if dispatcher.inflight.Peek() == 0 {
			break
		}
		time.Sleep(defs.CloseInflightPollInterval)
	}
	if remaining := dispatcher.inflight.Forget(); remaining > 0 {
		dispatcher.logger.Warnf("closing with %d in-flight write(s) still pending", remaining)
		dispatcher.metrics.inflightWrites.Set(0)
	}

	if dispatcher.conn == nil {
		complete(callback)
		return
	}
	if err := dispatcher.conn.Close(); err != nil && !util.IsNetworkClosed(err) {
		dispatcher.ReportError(&Error{Op: "close", Err: err}, callback)
		return
	}
	dispatcher.logger.Info("socket closed")
	complete(callback)
}

// CapturedPayloads returns a copy of payloads recorded in mock mode, in send order
func (dispatcher *Dispatcher) CapturedPayloads() []string {
	dispatcher.captureMutex.Lock()
	defer dispatcher.captureMutex.Unlock()
	return append([]string(nil), dispatcher.captured...)
}

func (dispatcher *Dispatcher) capture(payload []byte) {
	dispatcher.captureMutex.Lock()
	dispatcher.captured = append(dispatcher.captured, string(payload))
	dispatcher.captureMutex.Unlock()
	dispatcher.metrics.mockedPayloadsTotal.Inc()
}

// ReportError resolves an error through the fixed chain: the caller callback if any,
// else the configured error handler, else a warning on the dispatcher logger
func (dispatcher *Dispatcher) ReportError(err error, callback Callback) {
	switch {
	case callback != nil:
		callback(err)
	case dispatcher.errorHandler != nil:
		dispatcher.errorHandler(err)
	default:
		dispatcher.logger.Warnf("unhandled error: %s", err.Error())
	}
}

func complete(callback Callback) {
	if callback != nil {
		callback(nil)
	}
}

func writeAll(conn net.Conn, data []byte) error {
	for {
		n, err := conn.Write(data)
		if err != nil {
			return err
		}
		data = data[n:]
		if len(data) == 0 {
			return nil
		}
	}
}
