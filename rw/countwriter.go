package rw

import "io"

// CountWriter wraps an io.Writer and tracks the byte total across calls.
type CountWriter struct {
	w io.Writer
	n int64
}

func NewCountWriter(w io.Writer) *CountWriter {
	return &CountWriter{w: w}
}

func (cw *CountWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n) // a single document serializes over many Write calls
	return n, err
}

func (cw *CountWriter) BytesWritten() int64 {
	return cw.n
}
