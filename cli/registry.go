package cli

import (
	"context"
	"fmt"
)

// Outcome tells the dispatcher whether a handler has more output to give
// for the current line.
type Outcome int

const (
	// Done means the handler has finished with the line.
	Done Outcome = iota
	// MoreOutputPending asks the dispatcher to flush the output buffer and
	// call the handler again with the same line.
	MoreOutputPending
)

func (o Outcome) String() string {
	if o == MoreOutputPending {
		return "more"
	}
	return "done"
}

// Handler runs one registered command.
//
// Handle may be called several times for a single line: once per chunk of
// output, until it returns Done. line is the full command line including
// the command name; it is only valid for the duration of the call. Output
// written to out is flushed to the terminal after every call.
type Handler interface {
	Handle(ctx context.Context, line []byte, out *OutputBuffer) Outcome
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(ctx context.Context, line []byte, out *OutputBuffer) Outcome

// Handle calls f(ctx, line, out).
func (f HandlerFunc) Handle(ctx context.Context, line []byte, out *OutputBuffer) Outcome {
	return f(ctx, line, out)
}

// Descriptor describes one command of the registry.
type Descriptor struct {
	// Name is what the operator types. Matched exactly, case-sensitive.
	Name string
	// Help is returned by the help command, CRLF terminated.
	Help string
	// Params is the exact number of parameters the command takes.
	Params int
	// Handler runs the command.
	Handler Handler
}

// Registry is the fixed, ordered set of commands known to the CLI.
// It is built once and read-only afterwards.
type Registry struct {
	commands []Descriptor
}

// NewRegistry validates descs and returns them as a registry. Order is
// preserved for help output.
func NewRegistry(descs ...Descriptor) (*Registry, error) {
	r := &Registry{commands: make([]Descriptor, 0, len(descs))}
	for _, d := range descs {
		if d.Name == "" || d.Handler == nil || d.Params < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCommand, d.Name)
		}
		for i := 0; i < len(d.Name); i++ {
			if isSpace(d.Name[i]) {
				return nil, fmt.Errorf("%w: %q contains whitespace", ErrInvalidCommand, d.Name)
			}
		}
		if _, ok := r.Lookup(d.Name); ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCommand, d.Name)
		}
		r.commands = append(r.commands, d)
	}
	return r, nil
}

// Lookup returns the descriptor registered under name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	for _, d := range r.commands {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.commands)
}

// At returns the i-th registered command.
func (r *Registry) At(i int) Descriptor {
	return r.commands[i]
}

// Commands returns a copy of the registered descriptors in order.
func (r *Registry) Commands() []Descriptor {
	out := make([]Descriptor, len(r.commands))
	copy(out, r.commands)
	return out
}
