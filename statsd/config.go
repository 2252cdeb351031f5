package statsd

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/relex/statsd-client/defs"
	"github.com/relex/statsd-client/transport"
	"gopkg.in/yaml.v3"
)

// Config defines a root client
//
// The zero value plus a host and port is a working UDP client without buffering; set
// MaxBufferSize to batch lines into shared payloads.
type Config struct {
	Endpoint transport.Endpoint `yaml:",inline"`

	// Prefix and Suffix wrap every metric name, e.g. Prefix "app." turns "my.stat"
	// into "app.my.stat"
	Prefix string `yaml:"prefix"`
	Suffix string `yaml:"suffix"`

	// GlobalTags are attached to every metric, event and service check; per-call tags
	// override colliding keys
	GlobalTags []string `yaml:"globalTags"`

	// MaxBufferSize is the buffer byte budget; 0 disables buffering and every line is
	// dispatched immediately in its own payload
	MaxBufferSize datasize.ByteSize `yaml:"maxBufferSize"`

	// BufferFlushInterval overrides defs.BufferFlushInterval when positive
	BufferFlushInterval time.Duration `yaml:"bufferFlushInterval"`

	// SampleRate is the default sample rate for metrics sent without an explicit one;
	// 0 is treated as 1 (send everything)
	SampleRate float64 `yaml:"sampleRate"`

	// Telegraf switches tag encoding to the telegraf format, which excludes events and
	// service checks
	Telegraf bool `yaml:"telegraf"`

	// Mock disables all I/O and records would-be payloads for inspection
	Mock bool `yaml:"mock"`

	// ErrorHandler receives errors from sends and closes that carry no callback
	ErrorHandler transport.Callback `yaml:"-"`
}

// VerifyConfig verifies the configuration
func (cfg *Config) VerifyConfig() error {
	if !cfg.Mock {
		if err := cfg.Endpoint.VerifyConfig(); err != nil {
			return err
		}
	}
	if cfg.SampleRate < 0 || cfg.SampleRate > 1 {
		return fmt.Errorf("config: sampleRate %f is outside [0, 1]", cfg.SampleRate)
	}
	if cfg.BufferFlushInterval < 0 {
		return fmt.Errorf("config: negative bufferFlushInterval %s", cfg.BufferFlushInterval)
	}
	return nil
}

func (cfg Config) withDefaults() Config {
	if cfg.SampleRate == 0 {
		cfg.SampleRate = 1
	}
	if cfg.BufferFlushInterval == 0 {
		cfg.BufferFlushInterval = defs.BufferFlushInterval
	}
	if cfg.Endpoint.Protocol == "" {
		cfg.Endpoint.Protocol = defs.ProtocolUDP
	}
	return cfg
}

// ParseConfig loads a Config from YAML, rejecting unknown fields
func ParseConfig(content []byte) (Config, error) {
	cfg := Config{}
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := cfg.VerifyConfig(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfigFile loads and verifies a Config from a YAML file
func LoadConfigFile(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return ParseConfig(content)
}
