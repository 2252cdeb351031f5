package statsd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageBufferBoundary(t *testing.T) {
	buffer := newMessageBuffer(30)

	// 13 bytes each, 14 with terminator
	assert.Nil(t, buffer.append("inc1.stat:1|c"))
	assert.Nil(t, buffer.append("inc2.stat:1|c"))
	assert.Equal(t, 28, buffer.pendingBytes())

	// the third line would exceed 30 bytes: existing content is handed out first
	flushed := buffer.append("inc3.stat:1|c")
	assert.Equal(t, "inc1.stat:1|c\ninc2.stat:1|c\n", string(flushed))
	assert.Equal(t, 14, buffer.pendingBytes())

	assert.Equal(t, "inc3.stat:1|c\n", string(buffer.takeAll()))
	assert.Equal(t, 0, buffer.pendingBytes())
	assert.Nil(t, buffer.takeAll())
}

func TestMessageBufferOversizedLine(t *testing.T) {
	buffer := newMessageBuffer(10)

	// a line longer than the whole budget is accepted, never dropped
	assert.Nil(t, buffer.append("very.long.metric.name:1|c"))
	assert.Equal(t, 26, buffer.pendingBytes())

	// the next append flushes the oversized line on its own
	flushed := buffer.append("a:1|c")
	assert.Equal(t, "very.long.metric.name:1|c\n", string(flushed))
	assert.Equal(t, "a:1|c\n", string(buffer.takeAll()))
}
