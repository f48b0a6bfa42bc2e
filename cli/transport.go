package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.bug.st/serial"
)

//go:generate go tool mockgen -source=transport.go -destination=mock_transport.go -package=cli

// Transport represents an established, bidirectional byte stream to the
// operator's terminal.
//
// Reads are expected to block until at least one byte is available, the
// way a serial port does. Writes are fire-and-forget from the CLI's point
// of view: write errors are logged but never change control flow.
type Transport interface {
	io.ReadWriteCloser
}

// Dialer opens a Transport.
//
// Dialer abstracts how the terminal connection is created (serial port,
// pseudo terminal, test double) and is only used while constructing a CLI.
type Dialer interface {
	// Dial creates and returns a connected Transport. It should respect
	// cancellation of ctx.
	Dial(ctx context.Context) (Transport, error)
}

// DefaultMode is the UART setting used when SerialDialer.Mode is nil.
var DefaultMode = serial.Mode{
	BaudRate: 115200,
	Parity:   serial.NoParity,
	DataBits: 8,
	StopBits: serial.OneStopBit,
}

// SerialDialer opens the command UART using go.bug.st/serial.
type SerialDialer struct {
	PortName string
	Mode     *serial.Mode
}

// Dial opens the serial port named by PortName.
func (d SerialDialer) Dial(ctx context.Context) (Transport, error) {
	if d.PortName == "" {
		return nil, errors.New("cli: serial port name is required")
	}
	if ctx == nil {
		return nil, errors.New("cli: context is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mode := d.Mode
	if mode == nil {
		m := DefaultMode
		mode = &m
	}

	port, err := serial.Open(d.PortName, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", d.PortName, err)
	}
	return port, nil
}
