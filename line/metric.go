package line

import (
	"strconv"
	"strings"
)

// Metric type markers of the statsd plaintext protocol
const (
	TypeCounter      = "c"
	TypeGauge        = "g"
	TypeTiming       = "ms"
	TypeHistogram    = "h"
	TypeDistribution = "d"
	TypeSet          = "s"
)

// FormatInt renders an integer metric value
func FormatInt(value int64) string {
	return strconv.FormatInt(value, 10)
}

// FormatFloat renders a float metric value with the shortest exact representation
func FormatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// FormatRate renders a sample rate for the "|@" field
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}

// BuildMetric builds one metric line without a trailing terminator, e.g.
// "app.svc.my.stat:1|c|@0.5|#env:prod".
//
// A sample rate of exactly 1 omits the "|@" field. In telegraf format, tags are
// rendered between the name and the value instead of as a "|#" suffix.
func BuildMetric(prefix string, name string, suffix string, value string, metricType string,
	sampleRate float64, tags []string, telegraf bool) string {
	var sb strings.Builder
	sb.Grow(len(prefix) + len(name) + len(suffix) + len(value) + len(metricType) + 24)
	sb.WriteString(prefix)
	sb.WriteString(name)
	sb.WriteString(suffix)
	if telegraf {
		sb.WriteString(RenderTelegrafTags(tags))
	}
	sb.WriteByte(':')
	sb.WriteString(value)
	sb.WriteByte('|')
	sb.WriteString(metricType)
	if sampleRate != 1 {
		sb.WriteString("|@")
		sb.WriteString(FormatRate(sampleRate))
	}
	if !telegraf {
		sb.WriteString(RenderTagSuffix(tags))
	}
	return sb.String()
}
