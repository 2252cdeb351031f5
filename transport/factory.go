// Package transport opens collector sockets and dispatches finished wire payloads to
// them. It knows nothing about metric line syntax; the statsd package hands it opaque
// byte payloads.
package transport

import (
	"fmt"
	"net"
	"strconv"

	"github.com/relex/statsd-client/defs"
)

// Endpoint selects the collector socket to open
//
// Host and Port apply to tcp and udp; Path applies to unix_dgram. An empty Protocol
// means udp, the classic statsd default.
type Endpoint struct {
	Protocol string `yaml:"protocol"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Path     string `yaml:"path"`
}

// Address returns the host:port or socket path this endpoint points at
func (endpoint Endpoint) Address() string {
	if endpoint.Protocol == defs.ProtocolUnixDatagram {
		return endpoint.Path
	}
	return net.JoinHostPort(endpoint.Host, strconv.Itoa(endpoint.Port))
}

// VerifyConfig verifies the endpoint selection
func (endpoint Endpoint) VerifyConfig() error {
	switch endpoint.Protocol {
	case defs.ProtocolTCP, defs.ProtocolUDP, "":
		if endpoint.Host == "" {
			return fmt.Errorf("endpoint: host is required for protocol '%s'", endpoint.Protocol)
		}
		if endpoint.Port <= 0 || endpoint.Port > 65535 {
			return fmt.Errorf("endpoint: invalid port %d", endpoint.Port)
		}
	case defs.ProtocolUnixDatagram:
		if endpoint.Path == "" {
			return fmt.Errorf("endpoint: path is required for protocol '%s'", endpoint.Protocol)
		}
	default:
		return fmt.Errorf("endpoint: unsupported protocol '%s'", endpoint.Protocol)
	}
	return nil
}

// Dial opens the socket for the given endpoint
//
// UDP and unix datagram sockets are connected so that later writes need no address,
// but no packet is exchanged until the first send. Name resolution happens here; a
// failure is returned to the caller to be cached and replayed on every send.
func Dial(endpoint Endpoint) (net.Conn, error) {
	switch endpoint.Protocol {
	case defs.ProtocolTCP:
		conn, err := net.DialTimeout("tcp", endpoint.Address(), defs.DialTimeout)
		if err != nil {
			return nil, &Error{Op: "dial", Err: err}
		}
		return conn, nil
	case defs.ProtocolUnixDatagram:
		conn, err := net.DialUnix("unixgram", nil, &net.UnixAddr{Name: endpoint.Path, Net: "unixgram"})
		if err != nil {
			return nil, &Error{Op: "dial", Err: err}
		}
		return conn, nil
	case defs.ProtocolUDP, "":
		conn, err := net.Dial("udp", endpoint.Address())
		if err != nil {
			return nil, &Error{Op: "dial", Err: err}
		}
		return conn, nil
	default:
		return nil, &Error{Op: "dial", Err: fmt.Errorf("unsupported protocol '%s'", endpoint.Protocol)}
	}
}
