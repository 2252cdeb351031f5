package line

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildEvent(t *testing.T) {
	assert.Equal(t, "_e{5,10}:title|event text",
		BuildEvent(Event{Title: "title", Text: "event text"}, nil))

	full := BuildEvent(Event{
		Title:          "deploy",
		Text:           "rolled out",
		Timestamp:      time.Unix(1234567890, 0),
		Hostname:       "web01",
		AggregationKey: "deploys",
		Priority:       EventPriorityLow,
		SourceTypeName: "ci",
		AlertType:      EventAlertSuccess,
	}, []string{"env:prod"})
	assert.Equal(t, "_e{6,10}:deploy|rolled out|d:1234567890|h:web01|k:deploys|p:low|s:ci|t:success|#env:prod", full)
}

func TestBuildEventEscapesNewlines(t *testing.T) {
	// declared lengths refer to the escaped strings
	assert.Equal(t, "_e{4,8}:a\\nb|one\\ntwo",
		BuildEvent(Event{Title: "a\nb", Text: "one\ntwo"}, nil))
}

func TestBuildServiceCheck(t *testing.T) {
	assert.Equal(t, "_sc|db.ping|0",
		BuildServiceCheck(ServiceCheck{Name: "db.ping", Status: ServiceCheckOK}, nil))

	full := BuildServiceCheck(ServiceCheck{
		Name:      "db.ping",
		Status:    ServiceCheckCritical,
		Timestamp: time.Unix(1234567890, 0),
		Hostname:  "web01",
		Message:   "connection refused",
	}, []string{"env:prod"})
	// the message must be the final field, after tags
	assert.Equal(t, "_sc|db.ping|2|d:1234567890|h:web01|#env:prod|m:connection refused", full)
}
