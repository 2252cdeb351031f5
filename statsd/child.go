package statsd

import (
	"github.com/relex/gotils/logger"
	"github.com/relex/statsd-client/defs"
	"github.com/relex/statsd-client/line"
)

// ChildOptions overlays naming and tags on top of a parent client
type ChildOptions struct {
	// Prefix is appended after the parent's accumulated prefix: a child prefix "svc."
	// under a parent prefix "app." yields names beginning "app.svc."
	Prefix string

	// Suffix is appended after the parent's accumulated suffix
	Suffix string

	// Tags are merged into the parent's tags, winning on key collision
	Tags []string
}

// NewChildClient creates a client scoped under this one
//
// The child shares the parent's socket and buffer by reference: its lines interleave
// with the parent's and its siblings' into the same flushes, in append order. It runs
// no flush timer of its own and inherits mock mode, telegraf format, sample rate and
// any cached dial error as they are at creation time. Closing the root invalidates the
// whole tree's sending; a child itself cannot be closed.
func (client *Client) NewChildClient(opts ChildOptions) *Client {
	child := &Client{
		logger:     client.logger.WithField(defs.LabelPart, "child"),
		prefix:     client.prefix + opts.Prefix,
		suffix:     client.suffix + opts.Suffix,
		tags:       copyTags(line.MergeTags(client.tags, opts.Tags)),
		sampleRate: client.sampleRate,
		telegraf:   client.telegraf,
		buffer:     client.buffer,
		sendMutex:  client.sendMutex,
		dispatcher: client.dispatcher,
		metrics:    client.metrics,
		randFloat:  client.randFloat,
		isChild:    true,
	}
	return child
}

func copyTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	return append([]string(nil), tags...)
}

// Logger exposes the client's logger for callers that want to attach fields
func (client *Client) Logger() logger.Logger {
	return client.logger
}
