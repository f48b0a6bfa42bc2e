package cli

import "fmt"

// OutputBuffer is a fixed-capacity text buffer. Writes that do not fit are
// truncated, never grown.
type OutputBuffer struct {
	buf []byte
}

// NewOutputBuffer allocates a buffer holding at most capacity bytes.
func NewOutputBuffer(capacity int) *OutputBuffer {
	return &OutputBuffer{buf: make([]byte, 0, capacity)}
}

// Write appends as much of p as fits. It always reports len(p) so it can be
// used with fmt.Fprintf without surfacing truncation as an error.
func (o *OutputBuffer) Write(p []byte) (int, error) {
	room := cap(o.buf) - len(o.buf)
	if len(p) > room {
		o.buf = append(o.buf, p[:room]...)
	} else {
		o.buf = append(o.buf, p...)
	}
	return len(p), nil
}

// WriteString is Write for strings.
func (o *OutputBuffer) WriteString(s string) (int, error) {
	n := len(s)
	if room := cap(o.buf) - len(o.buf); n > room {
		s = s[:room]
	}
	o.buf = append(o.buf, s...)
	return n, nil
}

// Printf formats into the buffer, truncating like snprintf.
func (o *OutputBuffer) Printf(format string, args ...any) {
	fmt.Fprintf(o, format, args...)
}

// Bytes returns the buffered output. It aliases the buffer until Reset.
func (o *OutputBuffer) Bytes() []byte { return o.buf }

func (o *OutputBuffer) Len() int { return len(o.buf) }

func (o *OutputBuffer) Cap() int { return cap(o.buf) }

// Reset empties the buffer without releasing its storage.
func (o *OutputBuffer) Reset() {
	clear(o.buf[:cap(o.buf)])
	o.buf = o.buf[:0]
}
