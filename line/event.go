package line

import (
	"strconv"
	"strings"
	"time"
)

// Event alert types accepted by the collector
const (
	EventAlertInfo    = "info"
	EventAlertWarning = "warning"
	EventAlertError   = "error"
	EventAlertSuccess = "success"
)

// Event priorities
const (
	EventPriorityNormal = "normal"
	EventPriorityLow    = "low"
)

// Event describes one dogstatsd event
//
// Only Title and Text are required; zero-valued optional fields are omitted from the line
type Event struct {
	Title          string
	Text           string
	Timestamp      time.Time
	Hostname       string
	AggregationKey string
	Priority       string
	SourceTypeName string
	AlertType      string
}

// BuildEvent builds an "_e{...}" line without a trailing terminator.
//
// Newlines in title and text are escaped as literal "\\n"; the declared lengths refer
// to the escaped strings as that is what the collector parses.
func BuildEvent(event Event, tags []string) string {
	title := escapeEventText(event.Title)
	text := escapeEventText(event.Text)

	var sb strings.Builder
	sb.Grow(len(title) + len(text) + 32)
	sb.WriteString("_e{")
	sb.WriteString(strconv.Itoa(len(title)))
	sb.WriteByte(',')
	sb.WriteString(strconv.Itoa(len(text)))
	sb.WriteString("}:")
	sb.WriteString(title)
	sb.WriteByte('|')
	sb.WriteString(text)
	if !event.Timestamp.IsZero() {
		sb.WriteString("|d:")
		sb.WriteString(strconv.FormatInt(event.Timestamp.Unix(), 10))
	}
	if event.Hostname != "" {
		sb.WriteString("|h:")
		sb.WriteString(event.Hostname)
	}
	if event.AggregationKey != "" {
		sb.WriteString("|k:")
		sb.WriteString(event.AggregationKey)
	}
	if event.Priority != "" {
		sb.WriteString("|p:")
		sb.WriteString(event.Priority)
	}
	if event.SourceTypeName != "" {
		sb.WriteString("|s:")
		sb.WriteString(event.SourceTypeName)
	}
	if event.AlertType != "" {
		sb.WriteString("|t:")
		sb.WriteString(event.AlertType)
	}
	sb.WriteString(RenderTagSuffix(tags))
	return sb.String()
}

func escapeEventText(text string) string {
	return strings.ReplaceAll(text, "\n", "\\n")
}
