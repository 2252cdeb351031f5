package statsd

import (
	"errors"
)

var (
	// ErrNoEventSupport is reported when an event is sent in telegraf format, which has
	// no wire representation for events
	ErrNoEventSupport = errors.New("events are not supported in telegraf format")

	// ErrNoServiceCheckSupport is reported when a service check is sent in telegraf format
	ErrNoServiceCheckSupport = errors.New("service checks are not supported in telegraf format")

	// ErrChildClose is returned when Close is called on a child client; the socket and
	// buffer belong to the root and only the root may tear them down
	ErrChildClose = errors.New("close must be called on the root client")
)
