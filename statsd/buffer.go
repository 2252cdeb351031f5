package statsd

import (
	"sync"
)

// messageBuffer accumulates newline-terminated metric lines up to a byte-size budget
//
// One buffer is shared by reference between a root client and all of its child
// clients, so appends from the whole tree interleave into a single stream and are
// flushed in append order. The mutex makes append and drain atomic with respect to
// each other; no flush can observe a half-appended line.
type messageBuffer struct {
	mutex   sync.Mutex
	data    []byte
	maxSize int
}

func newMessageBuffer(maxSize int) *messageBuffer {
	return &messageBuffer{
		data:    make([]byte, 0, maxSize),
		maxSize: maxSize,
	}
}

// append adds one line plus terminator. If that would push the existing content over
// the size budget, the existing content is handed back for flushing and the buffer
// restarts with only the new line. A line longer than the whole budget is still
// accepted; it simply rides alone in the next flush. No line is ever dropped here.
func (buffer *messageBuffer) append(message string) (toFlush []byte) {
	buffer.mutex.Lock()
	defer buffer.mutex.Unlock()
	if len(buffer.data) > 0 && len(buffer.data)+len(message)+1 > buffer.maxSize {
		toFlush = buffer.data
		buffer.data = make([]byte, 0, buffer.maxSize)
	}
	buffer.data = append(buffer.data, message...)
	buffer.data = append(buffer.data, '\n')
	return toFlush
}

// takeAll drains the buffer, returning nil when there is nothing pending
func (buffer *messageBuffer) takeAll() []byte {
	buffer.mutex.Lock()
	defer buffer.mutex.Unlock()
	if len(buffer.data) == 0 {
		return nil
	}
	taken := buffer.data
	buffer.data = make([]byte, 0, buffer.maxSize)
	return taken
}

// pendingBytes reads the current content length
func (buffer *messageBuffer) pendingBytes() int {
	buffer.mutex.Lock()
	defer buffer.mutex.Unlock()
	return len(buffer.data)
}
