package statsd

import (
	"strconv"
	"sync"
	"testing"

	"github.com/relex/gotils/logger"
	"github.com/relex/gotils/promexporter/promreg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	registry := NewRegistry()

	web, werr := NewClient(logger.Root(), Config{Mock: true},
		promreg.NewMetricFactory("testregistry_web_", nil, nil))
	require.NoError(t, werr)
	jobs, jerr := NewClient(logger.Root(), Config{Mock: true},
		promreg.NewMetricFactory("testregistry_jobs_", nil, nil))
	require.NoError(t, jerr)

	registry.Register("web", web)
	registry.Register("jobs", jobs)

	found, ok := registry.Lookup("web")
	assert.True(t, ok)
	assert.Same(t, web, found)

	registry.Deregister("jobs")
	_, ok = registry.Lookup("jobs")
	assert.False(t, ok)

	assert.NoError(t, registry.CloseAll())
	_, ok = registry.Lookup("web")
	assert.False(t, ok)

	// clients closed through the registry stay closed
	assert.NoError(t, web.Close())
}

func TestRegistryConcurrentAccess(t *testing.T) {
	registry := NewRegistry()
	client, cerr := NewClient(logger.Root(), Config{Mock: true},
		promreg.NewMetricFactory("testregistry_concurrent_", nil, nil))
	require.NoError(t, cerr)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			name := "client-" + strconv.Itoa(n)
			registry.Register(name, client)
			_, _ = registry.Lookup(name)
			registry.Deregister(name)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 10; i++ {
		_, ok := registry.Lookup("client-" + strconv.Itoa(i))
		assert.False(t, ok)
	}
	assert.NoError(t, client.Close())
}
