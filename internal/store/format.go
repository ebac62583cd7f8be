package store

import (
	"fmt"
	"io"

	"github.com/valyala/bytebufferpool"
)

// WriteTo writes one "key=value" line per entry in iteration order.
func (h *HashTable[K, V]) WriteTo(w io.Writer) (int64, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	h.render(buf)
	return buf.WriteTo(w)
}

func (h *HashTable[K, V]) String() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	h.render(buf)
	return buf.String()
}

func (h *HashTable[K, V]) render(buf *bytebufferpool.ByteBuffer) {
	for k, v := range h.All() {
		fmt.Fprintf(buf, "%v=%v\n", k, v)
	}
}
