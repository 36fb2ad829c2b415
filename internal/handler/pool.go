package handler

import (
	"bytes"
	"sync"
)

// encodeBufferSize fits the common job listing page without growing.
const encodeBufferSize = 512

// bufferPool recycles encode buffers across JSON responses.
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, encodeBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
