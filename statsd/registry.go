package statsd

import (
	"github.com/puzpuzpuz/xsync"
)

// Registry holds named root clients
//
// It replaces the classic "install as process-wide default instance" pattern with
// explicit dependency injection: the caller constructs a registry, registers clients
// under names and passes the registry to whatever needs them. Nothing here is ambient
// or global.
type Registry struct {
	clients *xsync.MapOf[*Client]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		clients: xsync.NewMapOf[*Client](),
	}
}

// Register stores a client under the given name, replacing any previous entry
func (registry *Registry) Register(name string, client *Client) {
	registry.clients.Store(name, client)
}

// Lookup finds a client by name
func (registry *Registry) Lookup(name string) (*Client, bool) {
	return registry.clients.Load(name)
}

// Deregister removes a client by name without closing it
func (registry *Registry) Deregister(name string) {
	registry.clients.Delete(name)
}

// CloseAll closes every registered root client and empties the registry, returning
// the first close error encountered
func (registry *Registry) CloseAll() error {
	var firstErr error
	registry.clients.Range(func(name string, client *Client) bool {
		if err := client.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		registry.clients.Delete(name)
		return true
	})
	return firstErr
}
