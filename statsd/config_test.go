package statsd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/relex/statsd-client/defs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
protocol: udp
host: statsd.example.com
port: 8125
prefix: "app."
globalTags: ["env:prod", "region:eu"]
maxBufferSize: 1432
bufferFlushInterval: 2s
sampleRate: 0.5
`))
	require.NoError(t, err)
	assert.Equal(t, defs.ProtocolUDP, cfg.Endpoint.Protocol)
	assert.Equal(t, "statsd.example.com:8125", cfg.Endpoint.Address())
	assert.Equal(t, "app.", cfg.Prefix)
	assert.Equal(t, []string{"env:prod", "region:eu"}, cfg.GlobalTags)
	assert.Equal(t, uint64(1432), cfg.MaxBufferSize.Bytes())
	assert.Equal(t, 2*time.Second, cfg.BufferFlushInterval)
	assert.Equal(t, 0.5, cfg.SampleRate)
}

func TestParseConfigRejectsUnknownFields(t *testing.T) {
	_, err := ParseConfig([]byte("host: localhost\nport: 8125\nbufferSize: 10\n"))
	assert.Error(t, err)
}

func TestVerifyConfig(t *testing.T) {
	assert.Error(t, (&Config{}).VerifyConfig()) // no host
	assert.NoError(t, (&Config{Mock: true}).VerifyConfig())

	cfg := Config{}
	cfg.Endpoint.Host = "localhost"
	cfg.Endpoint.Port = 8125
	assert.NoError(t, cfg.VerifyConfig())

	cfg.SampleRate = 1.5
	assert.Error(t, cfg.VerifyConfig())

	cfg.SampleRate = 1
	cfg.BufferFlushInterval = -time.Second
	assert.Error(t, cfg.VerifyConfig())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statsd.yml")
	require.NoError(t, os.WriteFile(path, []byte("host: localhost\nport: 8125\n"), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost:8125", cfg.Endpoint.Address())

	_, err = LoadConfigFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}
