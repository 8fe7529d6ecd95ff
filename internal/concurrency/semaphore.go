// Package concurrency holds the bounded-concurrency primitive the search
// driver's thread-pool mode uses to cap the number of segments processed
// at once, adapted from this codebase's own counting-semaphore helper.
package concurrency

import "context"

// Semaphore is a counting semaphore for bounded concurrency.
//
// Thread Safety: safe for concurrent use.
type Semaphore struct {
	ch chan struct{}
}

// NewSemaphore creates a semaphore with the given capacity. A non-positive
// capacity is treated as 1.
func NewSemaphore(capacity int) *Semaphore {
	if capacity <= 0 {
		capacity = 1
	}
	return &Semaphore{ch: make(chan struct{}, capacity)}
}

// Acquire blocks until a slot is available or ctx is done.
func (s *Semaphore) Acquire(ctx context.Context) error {
	select {
	case s.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Release returns a slot to the semaphore. It must follow a successful
// Acquire.
func (s *Semaphore) Release() {
	<-s.ch
}
