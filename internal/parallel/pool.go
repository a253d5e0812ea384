// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package parallel provides the fixed-size worker pool behind batch
// rendering.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrClosed is reported for jobs given to a closed pool.
var ErrClosed = errors.New("parallel: pool closed")

// Pool is a fixed set of goroutines, each with its own queue. An idle
// worker steals from the other queues before blocking on its own, so a
// slow job does not hold back the jobs queued behind it.
//
// Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()

	// mu is held for reading while jobs are queued, so Close cannot
	// stop the workers between a send and its execution.
	mu      sync.RWMutex
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool starts a pool with the given number of workers. Zero or a
// negative count means GOMAXPROCS.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	depth := max(8, workers*4)

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), depth)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case <-p.done:
			drain(own)
			return
		case job := <-own:
			job()
			continue
		default:
		}

		if job := p.steal(id); job != nil {
			job()
			continue
		}

		select {
		case <-p.done:
			drain(own)
			return
		case job := <-own:
			job()
		}
	}
}

func drain(q chan func()) {
	for {
		select {
		case job := <-q:
			job()
		default:
			return
		}
	}
}

func (p *Pool) steal(id int) func() {
	for i := 1; i < p.workers; i++ {
		select {
		case job := <-p.queues[(id+i)%p.workers]:
			return job
		default:
		}
	}
	return nil
}

// Map calls fn for every index in [0, n) on the pool and waits for all
// calls to finish. The error of call i is stored in slot i of the result.
//
// Once ctx is done, indices that have not started are not run and their
// slot holds ctx.Err(). fn receives ctx and should return early when it is
// cancelled. A closed pool runs nothing and reports ErrClosed in every slot.
func (p *Pool) Map(ctx context.Context, n int, fn func(ctx context.Context, i int) error) []error {
	errs := make([]error, n)
	if n == 0 {
		return errs
	}

	p.mu.RLock()
	if !p.running.Load() {
		p.mu.RUnlock()
		for i := range errs {
			errs[i] = ErrClosed
		}
		return errs
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		job := func() {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			errs[i] = fn(ctx, i)
		}

		select {
		case p.queues[i%p.workers] <- job:
		case <-ctx.Done():
			errs[i] = ctx.Err()
			wg.Done()
		}
	}
	p.mu.RUnlock()
	wg.Wait()
	return errs
}

// Close stops the pool after the queued jobs have run. It is safe to call
// more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.running.CompareAndSwap(true, false) {
		p.mu.Unlock()
		return
	}
	close(p.done)
	p.mu.Unlock()
	p.wg.Wait()
}

// Workers returns the number of workers.
func (p *Pool) Workers() int {
	return p.workers
}

// Queued returns the approximate number of jobs waiting to run.
func (p *Pool) Queued() int {
	n := 0
	for _, q := range p.queues {
		n += len(q)
	}
	return n
}
