package cmd

import (
	"strings"

	"github.com/relex/gotils/logger"
	"github.com/relex/gotils/promexporter/promreg"
	"github.com/relex/statsd-client/line"
	"github.com/relex/statsd-client/statsd"
)

type sendCommandState struct {
	Config     string  `help:"Client configuration file path (YAML); empty for UDP to localhost:8125"`
	Type       string  `help:"Metric type: c (counter), g (gauge), ms (timing), h (histogram), d (distribution) or s (set)"`
	SampleRate float64 `name:"samplerate" help:"Sample rate in (0, 1]"`
	Tags       string  `help:"Comma-separated tags in key:value form"`
}

var sendCmd = sendCommandState{
	Type:       line.TypeCounter,
	SampleRate: 1,
}

func (cmd *sendCommandState) run(args []string) {
	name := args[0]
	value := args[1]

	client := newClientFromFlags(cmd.Config, "statsdcli_send_")

	client.SendMetric(name, value, cmd.Type, cmd.SampleRate, splitTags(cmd.Tags), func(err error) {
		if err != nil {
			logger.Fatalf("failed to send: %s", err.Error())
		}
	})
	if err := client.Close(); err != nil {
		logger.Fatalf("failed to close: %s", err.Error())
	}
	logger.Infof("sent %s:%s|%s", name, value, cmd.Type)
}

func newClientFromFlags(configPath string, metricPrefix string) *statsd.Client {
	cfg := statsd.Config{}
	if configPath != "" {
		loaded, err := statsd.LoadConfigFile(configPath)
		if err != nil {
			logger.Fatalf("failed to load config: %s", err.Error())
		}
		cfg = loaded
	} else {
		cfg.Endpoint.Host = "localhost"
		cfg.Endpoint.Port = 8125
	}

	client, err := statsd.NewClient(logger.Root(), cfg, promreg.NewMetricFactory(metricPrefix, nil, nil))
	if err != nil {
		logger.Fatalf("failed to create client: %s", err.Error())
	}
	return client
}

func splitTags(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}
