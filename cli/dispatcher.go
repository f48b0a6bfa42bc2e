package cli

import (
	"context"
	"io"
	"log/slog"
)

// Aborter is implemented by multi-chunk handlers that keep state between
// invocations. Abort is called when the dispatcher stops invoking the
// handler before it returned Done.
type Aborter interface {
	Abort()
}

// Dispatcher runs complete command lines against a Registry and flushes
// handler output to the terminal.
type Dispatcher struct {
	registry  *Registry
	term      io.Writer
	out       *OutputBuffer
	maxChunks int
	logger    *slog.Logger
	metrics   *Metrics
}

// NewDispatcher creates a dispatcher writing to term through an output
// buffer of outputCapacity bytes.
func NewDispatcher(registry *Registry, term io.Writer, outputCapacity, maxChunks int, logger *slog.Logger, metrics *Metrics) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{
		registry:  registry,
		term:      term,
		out:       NewOutputBuffer(outputCapacity),
		maxChunks: maxChunks,
		logger:    logger,
		metrics:   metrics,
	}
}

// Dispatch runs one line. Blank lines are ignored. The handler is invoked
// until it returns Done, or maxChunks times, and the output buffer is
// flushed after each invocation.
func (d *Dispatcher) Dispatch(ctx context.Context, line []byte) {
	name := CommandName(line)
	if len(name) == 0 {
		return
	}
	d.metrics.lineDispatched()

	desc, ok := d.registry.Lookup(string(name))
	if !ok {
		d.logger.Debug("Command not recognised", "name", string(name))
		d.metrics.unknownCommand()
		d.reply(msgNotRecognised)
		return
	}

	if n := ParameterCount(line); n != desc.Params {
		d.logger.Debug("Incorrect parameter count", "command", desc.Name, "expected", desc.Params, "got", n)
		d.reply(msgIncorrectParams)
		return
	}

	d.logger.Debug("Dispatching command", "command", desc.Name)
	for chunk := 1; ; chunk++ {
		d.out.Reset()
		outcome := desc.Handler.Handle(ctx, line, d.out)
		d.flush()
		if outcome == Done {
			return
		}
		if chunk >= d.maxChunks {
			d.logger.Warn("Handler exceeded chunk limit", "command", desc.Name, "limit", d.maxChunks)
			if a, ok := desc.Handler.(Aborter); ok {
				a.Abort()
			}
			return
		}
	}
}

func (d *Dispatcher) reply(msg string) {
	d.out.Reset()
	d.out.WriteString(msg)
	d.flush()
}

func (d *Dispatcher) flush() {
	if d.out.Len() > 0 {
		if _, err := d.term.Write(d.out.Bytes()); err != nil {
			d.logger.Warn("Failed to write to terminal", "error", err)
		}
	}
	d.out.Reset()
}
