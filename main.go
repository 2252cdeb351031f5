package main

import (
	"math/rand"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/relex/gotils/logger"
	"github.com/relex/statsd-client/cmd"
)

var version string

func main() {
	rand.Seed(time.Now().UnixNano()) // seed rand properly for all rand.* calls

	logger.Infof("version: %s", version)

	registerInfoMetric()

	cmd.Execute()
}

func registerInfoMetric() {
	opts := prometheus.GaugeOpts{}
	opts.Name = "statsd_cli_info"
	opts.Help = "statsd-cli application information"
	gauge := prometheus.NewGaugeVec(opts, []string{"version"})
	gauge.WithLabelValues(version).Set(1)
	prometheus.MustRegister(gauge)
}
