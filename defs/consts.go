package defs

// Common labels for logging
const (
	LabelComponent = "component"
	LabelName      = "name"
	LabelPart      = "part"

	LabelProtocol = "protocol"
	LabelRemote   = "remote"
)

// Transport protocol names accepted in configuration
const (
	ProtocolTCP          = "tcp"
	ProtocolUDP          = "udp"
	ProtocolUnixDatagram = "unix_dgram"
)
