// Package cli implements the text command front-end of the BLDC motor
// controller: it assembles bytes from a serial terminal into command lines,
// matches them against a fixed registry of commands, validates their
// parameters and forwards typed messages to the motor task's queue.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// CLI owns the terminal transport, the line editor and the dispatcher.
// Everything except Close runs on the single worker goroutine started by
// Loop or Start.
type CLI struct {
	// transport is the operator's terminal (usually a UART)
	transport Transport
	// config holds limits, collaborators and the debug sink
	config Config
	// registry is built once in New and never changes
	registry *Registry
	// editor holds the line being typed
	editor *Editor
	// dispatcher runs completed lines
	dispatcher *Dispatcher

	logger  *slog.Logger
	metrics *Metrics

	mu          sync.Mutex
	closed      bool
	loopRunning bool
	loopCancel  context.CancelFunc
}

// New opens the terminal transport and registers every command.
// The worker loop is not started; call Start or Loop.
func New(ctx context.Context, config Config) (*CLI, error) {
	config.setDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}

	transport, err := config.dialer.Dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("dial terminal: %w", err)
	}

	c := &CLI{
		transport: transport,
		config:    config,
		editor:    NewEditor(config.lineCapacity),
		logger:    config.logger,
		metrics:   config.metrics,
	}

	help := &helpCommand{}
	motor := &motorCommands{
		queue:   config.queue,
		term:    transport,
		maxRPM:  config.maxRPM,
		logger:  c.logger,
		metrics: c.metrics,
	}
	registry, err := NewRegistry(append([]Descriptor{helpDescriptor(help)}, motor.descriptors()...)...)
	if err != nil {
		transport.Close()
		return nil, fmt.Errorf("register commands: %w", err)
	}
	help.registry = registry
	c.registry = registry

	c.dispatcher = NewDispatcher(registry, transport, config.outputCapacity, config.maxChunks, c.logger, c.metrics)
	return c, nil
}

// Registry returns the registered commands.
func (c *CLI) Registry() *Registry {
	return c.registry
}

// Start runs Loop on a new goroutine. The returned channel receives
// Loop's result once it stops.
func (c *CLI) Start(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- c.Loop(ctx)
	}()
	return done
}

// Loop is the worker loop. It writes the welcome banner, then reads the
// terminal one byte at a time and feeds the line editor, dispatching each
// completed line before looking at the next byte. Lines are therefore
// handled, and their messages submitted, in the order their carriage
// returns arrive.
//
// Loop only returns when the transport fails or reaches EOF, when ctx is
// cancelled, or after Close. None of the command errors stop it.
func (c *CLI) Loop(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrAlreadyClosed
	}
	if c.loopRunning {
		c.mu.Unlock()
		return ErrLoopRunning
	}
	c.loopRunning = true
	ctx, cancel := context.WithCancel(ctx)
	c.loopCancel = cancel
	c.mu.Unlock()

	defer func() {
		cancel()
		c.mu.Lock()
		c.loopRunning = false
		c.mu.Unlock()
	}()

	c.logger.Debug("CLI loop started")
	if c.config.welcome != "" {
		c.write(c.config.welcome)
	}

	received := make(chan byte, c.editor.Cap())
	readErrs := make(chan error, 1)

	// Only this goroutine reads from the transport.
	go func() {
		defer close(received)
		reader := bufio.NewReader(c.transport)
		for {
			b, err := reader.ReadByte()
			if err != nil {
				readErrs <- err
				return
			}
			select {
			case received <- b:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case b, ok := <-received:
			if !ok {
				select {
				case err := <-readErrs:
					if errors.Is(err, io.EOF) {
						return io.EOF
					}
					return fmt.Errorf("read error: %w", err)
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			c.handleByte(ctx, b)
		}
	}
}

// handleByte runs one byte through the line editor.
func (c *CLI) handleByte(ctx context.Context, b byte) {
	c.metrics.byteReceived()
	debug := c.logger.Enabled(ctx, slog.LevelDebug)
	if debug {
		c.logger.Debug("Byte received", "byte", fmt.Sprintf("%q", b))
	}

	before := c.editor.State()
	switch c.editor.Feed(b) {
	case EventLine:
		if debug {
			c.logger.Debug("Carriage return received, processing line", "line", string(c.editor.Line()))
		}
		c.config.indicator.Pulse(c.config.pulsePattern, c.config.pulseDuration)
		c.dispatcher.Dispatch(ctx, c.editor.Line())
		c.editor.Reset()
		c.logger.Debug("Line processing complete")

	case EventDropped:
		c.metrics.byteDropped()
		c.logger.Debug("Maximum input line length reached, byte dropped", "capacity", c.editor.Cap())
	}

	if after := c.editor.State(); debug && after != before {
		c.logger.Debug("Line editor state changed", "from", before.String(), "to", after.String())
	}
}

func (c *CLI) write(s string) {
	if _, err := io.WriteString(c.transport, s); err != nil {
		c.logger.Warn("Failed to write to terminal", "error", err)
	}
}

// Close stops the worker loop and closes the transport. The CLI cannot be
// reused afterwards.
func (c *CLI) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrAlreadyClosed
	}
	c.closed = true
	cancel := c.loopCancel
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if c.transport != nil {
		return c.transport.Close()
	}
	return nil
}
