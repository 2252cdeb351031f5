package statsd

import (
	"github.com/relex/gotils/promexporter/promext"
	"github.com/relex/gotils/promexporter/promreg"
)

// clientMetrics defines self-metrics of one client tree, shared between the root and
// all child clients
type clientMetrics struct {
	enqueuedLinesTotal promext.RWCounter
	flushedBySize      promext.RWCounter
	flushedByTimer     promext.RWCounter
	flushedManually    promext.RWCounter
	flushedOnClose     promext.RWCounter
	samplingSkipsTotal promext.RWCounter
	bufferedBytes      promext.RWGauge
}

func newClientMetrics(metricCreator promreg.MetricCreator) *clientMetrics {
	clientMetricCreator := metricCreator.AddOrGetPrefix("client_", nil, nil)
	flushes := clientMetricCreator.AddOrGetCounterVec("flushes_total", "Numbers of buffer flushes by trigger", []string{"trigger"}, nil)

	return &clientMetrics{
		enqueuedLinesTotal: clientMetricCreator.AddOrGetCounter("enqueued_lines_total", "Numbers of metric lines appended to the buffer", nil, nil),
		flushedBySize:      flushes.WithLabelValues("size"),
		flushedByTimer:     flushes.WithLabelValues("timer"),
		flushedManually:    flushes.WithLabelValues("manual"),
		flushedOnClose:     flushes.WithLabelValues("close"),
		samplingSkipsTotal: clientMetricCreator.AddOrGetCounter("sampling_skips_total", "Numbers of metric lines skipped by sample-rate decisions", nil, nil),
		bufferedBytes:      clientMetricCreator.AddOrGetGauge("buffered_bytes", "Current length in bytes of buffered metric lines", nil, nil),
	}
}
