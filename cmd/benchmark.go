package cmd

import (
	"context"
	"time"

	"github.com/relex/gotils/logger"
	"github.com/relex/gotils/promexporter/promreg"
	"github.com/relex/statsd-client/defs"
	"github.com/relex/statsd-client/statsd"
	"github.com/relex/statsd-client/util"
)

type benchmarkCommandState struct {
	Config      string `help:"Client configuration file path (YAML); empty for a mock client without I/O"`
	Repeat      int    `help:"Numbers of metrics to send"`
	MetricsAddr string `help:"The listener address to expose Prometheus metrics and debug information; empty to disable"`
}

var benchCmd = benchmarkCommandState{
	Repeat: 1000000,
}

func (cmd *benchmarkCommandState) run(_ []string) {
	defs.EnableTestMode()

	var msrv interface{ Shutdown(context.Context) error }
	if cmd.MetricsAddr != "" {
		msrv = util.LaunchMetricsListener(cmd.MetricsAddr)
	}

	var client *statsd.Client
	if cmd.Config != "" {
		client = newClientFromFlags(cmd.Config, "statsdcli_bench_")
	} else {
		mockClient, err := statsd.NewClient(logger.Root(), statsd.Config{Mock: true, MaxBufferSize: 1432},
			promreg.NewMetricFactory("statsdcli_bench_", nil, nil))
		if err != nil {
			logger.Fatalf("failed to create client: %s", err.Error())
		}
		client = mockClient
	}

	start := time.Now()
	for i := 0; i < cmd.Repeat; i++ {
		client.Increment("benchmark.stat", "iteration:fixed")
	}
	client.Flush(nil)
	elapsed := time.Since(start)

	if err := client.Close(); err != nil {
		logger.Errorf("failed to close: %s", err.Error())
	}
	logger.Infof("sent %d metrics in %s (%.0f/s)", cmd.Repeat, elapsed, float64(cmd.Repeat)/elapsed.Seconds())

	if msrv != nil {
		if err := msrv.Shutdown(context.Background()); err != nil {
			logger.Errorf("error shutting down metrics listener: %v", err)
		}
	}
}
