package cli

import (
	"bytes"
	"context"
	"io"
	"sync"
)

// TestTransport is a test helper that simulates a terminal using channels.
// Reads block until SendData queues input, like a real serial port would,
// and everything written is captured for inspection.
type TestTransport struct {
	mu       sync.Mutex
	readChan chan []byte
	pending  []byte
	written  bytes.Buffer
	closed   bool
}

// NewTestTransport creates a new test transport for testing.
// Exported for use in tests.
func NewTestTransport() *TestTransport {
	return &TestTransport{
		readChan: make(chan []byte, 16),
	}
}

func (t *TestTransport) Write(p []byte) (n int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return 0, io.ErrClosedPipe
	}
	return t.written.Write(p)
}

func (t *TestTransport) Read(p []byte) (n int, err error) {
	if len(t.pending) == 0 {
		data, ok := <-t.readChan
		if !ok {
			return 0, io.EOF
		}
		t.pending = data
	}
	n = copy(p, t.pending)
	t.pending = t.pending[n:]
	return n, nil
}

func (t *TestTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	close(t.readChan)
	return nil
}

// SendData queues data to be read by the transport.
// This simulates the operator typing.
func (t *TestTransport) SendData(data string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.closed {
		t.readChan <- []byte(data)
	}
}

// Output returns everything written to the transport so far.
func (t *TestTransport) Output() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.written.String()
}

// Dialer returns a Dialer that always hands out t.
func (t *TestTransport) Dialer() Dialer {
	return testDialer{t}
}

type testDialer struct {
	t *TestTransport
}

func (d testDialer) Dial(ctx context.Context) (Transport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return d.t, nil
}
