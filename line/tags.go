// Package line builds statsd wire lines: metric samples, events and service checks.
//
// Everything here is pure string construction; buffering and socket dispatch live in
// the statsd and transport packages.
package line

import (
	"strings"
)

// TagKey extracts the key part of a "key:value" tag, or the whole tag for bare flags
func TagKey(tag string) string {
	if pos := strings.IndexByte(tag, ':'); pos >= 0 {
		return tag[:pos]
	}
	return tag
}

// MergeTags combines base tags with override tags. Base tags whose key collides with
// an override key are removed; surviving base tags keep their relative order and all
// override tags are appended after them.
//
// The same rule applies to global tags vs per-call tags and to parent vs child client
// tags, so collisions always resolve in favor of the more specific set.
func MergeTags(base []string, override []string) []string {
	if len(override) == 0 {
		return base
	}
	if len(base) == 0 {
		return override
	}
	overrideKeys := make(map[string]struct{}, len(override))
	for _, tag := range override {
		overrideKeys[TagKey(tag)] = struct{}{}
	}
	merged := make([]string, 0, len(base)+len(override))
	for _, tag := range base {
		if _, masked := overrideKeys[TagKey(tag)]; !masked {
			merged = append(merged, tag)
		}
	}
	return append(merged, override...)
}

// RenderTagSuffix renders the "|#tag1,tag2" suffix for the dogstatsd format, or an
// empty string when there are no tags
func RenderTagSuffix(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	return "|#" + strings.Join(tags, ",")
}

// RenderTelegrafTags renders tags in the telegraf format: ",key=value" pairs appended
// directly after the metric name. Only the first ':' of each tag becomes '='.
func RenderTelegrafTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, tag := range tags {
		sb.WriteByte(',')
		sb.WriteString(strings.Replace(tag, ":", "=", 1))
	}
	return sb.String()
}
