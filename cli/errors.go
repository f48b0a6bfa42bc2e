package cli

import "errors"

var (
	// ErrNoDialer is returned when a CLI is constructed without a Dialer.
	//
	// A Dialer is required in order to open the serial line the operator
	// types on.
	ErrNoDialer = errors.New("no dialer configured")

	// ErrNoQueue is returned when a CLI is constructed without a Submitter
	// for the motor task's command queue.
	ErrNoQueue = errors.New("no command queue configured")

	// ErrInvalidConfig is returned by ConfigBuilder.Build when a limit is
	// out of range.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrQueueFull is returned when the motor task did not accept a command
	// within the configured wait.
	ErrQueueFull = errors.New("command queue full")

	// ErrLoopRunning is returned when Loop or Start is called while the
	// worker loop is already running.
	ErrLoopRunning = errors.New("loop already running")

	// ErrAlreadyClosed is returned when Close is called on a CLI that has
	// already been closed.
	ErrAlreadyClosed = errors.New("cli already closed")

	// ErrDuplicateCommand is returned when two descriptors share a name.
	ErrDuplicateCommand = errors.New("duplicate command name")

	// ErrInvalidCommand is returned for a descriptor with an empty name,
	// a name containing whitespace, or no handler.
	ErrInvalidCommand = errors.New("invalid command descriptor")
)
