package line

import (
	"strconv"
	"strings"
	"time"
)

// ServiceCheckStatus is the numeric status of a service check
type ServiceCheckStatus int

// Service check statuses
const (
	ServiceCheckOK       ServiceCheckStatus = 0
	ServiceCheckWarning  ServiceCheckStatus = 1
	ServiceCheckCritical ServiceCheckStatus = 2
	ServiceCheckUnknown  ServiceCheckStatus = 3
)

// ServiceCheck describes one "_sc" service check line
type ServiceCheck struct {
	Name      string
	Status    ServiceCheckStatus
	Timestamp time.Time
	Hostname  string
	Message   string
}

// BuildServiceCheck builds an "_sc" line without a trailing terminator.
//
// The message, when present, is the final field: the collector treats everything after
// "m:" as message text, so no field may follow it. Callers must not append tags to the
// returned line.
func BuildServiceCheck(check ServiceCheck, tags []string) string {
	var sb strings.Builder
	sb.Grow(len(check.Name) + len(check.Message) + 32)
	sb.WriteString("_sc|")
	sb.WriteString(check.Name)
	sb.WriteByte('|')
	sb.WriteString(strconv.Itoa(int(check.Status)))
	if !check.Timestamp.IsZero() {
		sb.WriteString("|d:")
		sb.WriteString(strconv.FormatInt(check.Timestamp.Unix(), 10))
	}
	if check.Hostname != "" {
		sb.WriteString("|h:")
		sb.WriteString(check.Hostname)
	}
	sb.WriteString(RenderTagSuffix(tags))
	if check.Message != "" {
		sb.WriteString("|m:")
		sb.WriteString(escapeEventText(check.Message))
	}
	return sb.String()
}
