package packet

import (
	"encoding/binary"
	"sync"
)

// Writer appends little-endian fields to a growable byte slice.
// Record and substructure layouts are written field by field in order.
type Writer struct {
	buf []byte
}

// writerPool holds Writers sized for one substructure or record.
var writerPool = sync.Pool{
	New: func() any {
		return &Writer{buf: make([]byte, 0, 128)}
	},
}

// Get returns an empty Writer from the pool.
func Get() *Writer {
	w := writerPool.Get().(*Writer)
	w.Reset()
	return w
}

// Put returns w to the pool. Neither w nor a slice from Bytes may be used afterwards.
func (w *Writer) Put() {
	writerPool.Put(w)
}

// NewWriter creates a Writer with the given initial capacity.
func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

// WriteByte appends a single byte. It never fails; the error satisfies io.ByteWriter.
func (w *Writer) WriteByte(b byte) error {
	w.buf = append(w.buf, b)
	return nil
}

// WriteShort appends a uint16.
func (w *Writer) WriteShort(val uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, val)
}

// WriteInt appends a uint32.
func (w *Writer) WriteInt(val uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, val)
}

// WriteBytes appends raw bytes.
func (w *Writer) WriteBytes(data []byte) {
	w.buf = append(w.buf, data...)
}

// Bytes returns the written data. The slice aliases the Writer's buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Reset empties the Writer, keeping its capacity.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
}
