package cli

import (
	"context"
	"fmt"
	"time"

	"i4.energy/across/bldccli/bldc"
)

//go:generate go tool mockgen -source=queue.go -destination=mock_queue.go -package=cli

// Submitter hands a command message to the motor task.
//
// Submit must not block longer than its own configured wait. It returns
// ErrQueueFull when the message could not be placed in time.
type Submitter interface {
	Submit(ctx context.Context, msg bldc.Message) error
}

// Queue is a bounded command queue shared with the motor task. The CLI
// only ever sends on it; the motor task drains Messages.
type Queue struct {
	ch      chan bldc.Message
	maxWait time.Duration
}

// NewQueue creates a queue holding up to size messages. Submit waits at
// most maxWait for room.
func NewQueue(size int, maxWait time.Duration) *Queue {
	return &Queue{
		ch:      make(chan bldc.Message, size),
		maxWait: maxWait,
	}
}

// Submit places msg on the queue, waiting up to the configured maximum
// for the consumer to make room.
func (q *Queue) Submit(ctx context.Context, msg bldc.Message) error {
	// Fast path, avoids arming a timer when there is room.
	select {
	case q.ch <- msg:
		return nil
	default:
	}

	if q.maxWait <= 0 {
		return ErrQueueFull
	}

	timer := time.NewTimer(q.maxWait)
	defer timer.Stop()

	select {
	case q.ch <- msg:
		return nil
	case <-timer.C:
		return fmt.Errorf("%w: waited %v for %s", ErrQueueFull, q.maxWait, msg.Command)
	case <-ctx.Done():
		return fmt.Errorf("%w: %w", ErrQueueFull, ctx.Err())
	}
}

// Messages returns the receive side for the motor task.
func (q *Queue) Messages() <-chan bldc.Message {
	return q.ch
}

// Len returns the number of queued messages.
func (q *Queue) Len() int { return len(q.ch) }

// Cap returns the queue capacity.
func (q *Queue) Cap() int { return cap(q.ch) }
