package limit

import (
	"context"
	"errors"
)

// Limiter bounds the number of tasks in flight at once. Waiters queue up
// in FIFO order on the slot channel; a cancelled waiter leaves the queue
// without consuming a slot.
type Limiter struct {
	slots chan struct{}
}

func New(maxConcurrent int) (*Limiter, error) {
	if maxConcurrent < 1 {
		return nil, errors.New("limit: max concurrent must be at least 1")
	}
	return &Limiter{slots: make(chan struct{}, maxConcurrent)}, nil
}

// Acquire blocks until a slot is free or ctx is done. Every successful
// Acquire must be paired with exactly one Release.
func (l *Limiter) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case l.slots <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Limiter) Release() {
	select {
	case <-l.slots:
	default:
		panic("limit: release without acquire")
	}
}

// Do runs task inside a slot. The slot is released on every exit path,
// and a task error propagates without affecting other queued tasks.
func (l *Limiter) Do(ctx context.Context, task func(context.Context) error) error {
	if err := l.Acquire(ctx); err != nil {
		return err
	}
	defer l.Release()
	return task(ctx)
}
