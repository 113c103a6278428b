package corpus

import "sync"

// bufPool reuses the chunk buffers that Generate fills with random
// content, so repeated corpus generation does not reallocate per chunk.
var bufPool = sync.Pool{
	New: func() interface{} {
		return make([]byte, chunkSize)
	},
}

func getBuffer(size int) []byte {
	buf := bufPool.Get().([]byte)
	if cap(buf) < size {
		return make([]byte, size)
	}
	return buf[:size]
}

func putBuffer(buf []byte) {
	bufPool.Put(buf)
}
