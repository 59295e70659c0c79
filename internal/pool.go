package internal

import (
	"bytes"
	"sync"
)

// BufferPool holds reusable buffers for formatting diagnostics.
var BufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 256))
	},
}

// GetBuffer returns an empty buffer from BufferPool.
func GetBuffer() *bytes.Buffer {
	buf := BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBuffer returns buf to BufferPool.
func PutBuffer(buf *bytes.Buffer) {
	BufferPool.Put(buf)
}
