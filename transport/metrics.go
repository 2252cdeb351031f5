package transport

import (
	"github.com/relex/gotils/promexporter/promext"
	"github.com/relex/gotils/promexporter/promreg"
)

// dispatcherMetrics defines self-metrics of one dispatcher / socket
type dispatcherMetrics struct {
	sentPayloadsTotal     promext.RWCounter
	sentBytesTotal        promext.RWCounter
	networkErrorsTotal    promext.RWCounter
	nonNetworkErrorsTotal promext.RWCounter
	mockedPayloadsTotal   promext.RWCounter
	inflightWrites        promext.RWGauge
}

func newDispatcherMetrics(metricCreator promreg.MetricCreator, protocol string) dispatcherMetrics {
	transportMetricCreator := metricCreator.AddOrGetPrefix("transport_", []string{"protocol"}, []string{protocol})

	metrics := dispatcherMetrics{
		sentPayloadsTotal:     transportMetricCreator.AddOrGetCounter("sent_payloads_total", "Numbers of payloads written to the socket", nil, nil),
		sentBytesTotal:        transportMetricCreator.AddOrGetCounter("sent_bytes_total", "Total length in bytes of payloads written to the socket", nil, nil),
		networkErrorsTotal:    transportMetricCreator.AddOrGetCounter("network_errors_total", "Numbers of network errors from the socket", nil, nil),
		nonNetworkErrorsTotal: transportMetricCreator.AddOrGetCounter("nonnetwork_errors_total", "Numbers of non-network errors (cached dial failure, misconfiguration)", nil, nil),
		mockedPayloadsTotal:   transportMetricCreator.AddOrGetCounter("mocked_payloads_total", "Numbers of payloads captured in mock mode instead of being sent", nil, nil),
		inflightWrites:        transportMetricCreator.AddOrGetGauge("inflight_writes", "Numbers of writes issued but not yet completed", nil, nil),
	}
	metrics.inflightWrites.Set(0)

	return metrics
}

func (metrics *dispatcherMetrics) OnSent(numBytes int) {
	metrics.sentPayloadsTotal.Inc()
	metrics.sentBytesTotal.Add(uint64(numBytes))
}
