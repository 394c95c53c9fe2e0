package ctl

import (
	"math/rand"
	"sync"
	"time"
)

// Accept-retry backoff bounds. A broken listener must not spin the
// accept worker.
const (
	// initialBackoff is the delay after the first accept failure.
	initialBackoff = 100 * time.Millisecond

	// maxBackoff caps the delay between accept retries.
	maxBackoff = 10 * time.Second

	// backoffMultiplier is the factor by which the delay grows.
	backoffMultiplier = 2.0

	// jitterFactor is the maximum jitter as a fraction of the base delay.
	jitterFactor = 0.25
)

// backoff calculates exponential accept-retry delays with jitter.
type backoff struct {
	mu      sync.Mutex
	current time.Duration
	rng     *rand.Rand
}

func newBackoff() *backoff {
	return &backoff{
		current: initialBackoff,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// next returns the jittered delay and advances the base delay.
func (b *backoff) next() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	delay := b.current + time.Duration(float64(b.current)*jitterFactor*b.rng.Float64())

	base := time.Duration(float64(b.current) * backoffMultiplier)
	if base > maxBackoff {
		base = maxBackoff
	}
	b.current = base

	return delay
}

// reset restores the initial delay. Called after a successful accept.
func (b *backoff) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.current = initialBackoff
}
