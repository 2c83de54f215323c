// Package ratelimit throttles mutation traffic per client address.
package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// sweepInterval is how often idle buckets are collected.
	sweepInterval = 5 * time.Minute
	// idleAfter is how long an address may stay quiet before its
	// bucket is dropped. A dropped address simply starts over with a
	// fresh burst on its next request.
	idleAfter = 10 * time.Minute
)

// bucket pairs a token bucket with the last time its address was seen.
type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// PerClient hands every client address its own token bucket, created
// on first sight. A background sweeper drops buckets for addresses
// that have gone quiet, so the map tracks live clients only — on a
// single-user board that is a handful of entries at most.
type PerClient struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   rate.Limit
	burst   int

	done     chan struct{}
	stopOnce sync.Once
}

// New creates a limiter allowing rps requests per second with the
// given burst per client address, and starts its sweeper.
func New(rps float64, burst int) *PerClient {
	p := &PerClient{
		buckets: make(map[string]*bucket),
		limit:   rate.Limit(rps),
		burst:   burst,
		done:    make(chan struct{}),
	}

	go p.sweep()

	return p
}

// Allow reports whether a request from addr may proceed right now.
// It never blocks; callers reject the request when it returns false.
func (p *PerClient) Allow(addr string) bool {
	p.mu.Lock()
	b, ok := p.buckets[addr]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(p.limit, p.burst)}
		p.buckets[addr] = b
	}
	b.lastSeen = time.Now()
	limiter := b.limiter
	p.mu.Unlock()

	return limiter.Allow()
}

// Stop ends the sweeper. Safe to call more than once.
func (p *PerClient) Stop() {
	p.stopOnce.Do(func() {
		close(p.done)
	})
}

func (p *PerClient) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			p.evictIdle(time.Now().Add(-idleAfter))
		}
	}
}

// evictIdle drops every bucket whose address was last seen before
// cutoff.
func (p *PerClient) evictIdle(cutoff time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for addr, b := range p.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(p.buckets, addr)
		}
	}
}
