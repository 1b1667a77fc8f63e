// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a fixed-size pool of worker goroutines that
// share one closable job queue.
//
// Jobs may submit further jobs through the Submitter they are handed, which is
// how divide-and-conquer kernels fan out: a job partitions its region, keeps
// the small pieces and submits the large ones. Shutdown is the single join
// point. It closes the queue to outside callers, waits until every queued and
// transitively submitted job has finished, and reports the first job that
// panicked.
//
// Usage:
//
//	pool := workerpool.New(par.NumProcs())
//	pool.Submit(func(s workerpool.Submitter) {
//	    // ... split work, s.Submit(more) ...
//	})
//	if err := pool.Shutdown(); err != nil {
//	    return err
//	}
//
// A pool that outlives one operation can be shared: each caller opens a Group,
// submits through it and waits on it, and only its own jobs are joined.
package workerpool

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/ajroetker/parkernels/par"
)

var (
	// ErrClosed is returned by Submit once Shutdown has been called.
	ErrClosed = errors.New("workerpool: pool is shut down")

	// ErrAborted is returned by Submit after a job in the same group has
	// panicked. Queued jobs of an aborted group are dropped without running.
	ErrAborted = errors.New("workerpool: group aborted after a job failure")
)

// Job is a unit of work. It receives a Submitter through which it may enqueue
// further jobs; those submissions are accepted even while the pool is
// draining after Shutdown.
type Job func(s Submitter)

// workItem represents a single queued job and the group it belongs to.
type workItem struct {
	fn    Job
	group *Group
}

// Pool is a fixed set of workers pulling from one FIFO queue. Admission is
// FIFO; completion order across workers is unspecified.
type Pool struct {
	numWorkers int

	mu      sync.Mutex
	cond    *sync.Cond
	queue   []workItem
	pending int // queued + running
	closed  bool

	wg        sync.WaitGroup
	closeOnce sync.Once

	// root is the group used by Pool.Submit and Pool.Submitter.
	root *Group

	submitted atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
	dropped   atomic.Int64

	metrics *Metrics
	logger  *slog.Logger
}

// Option configures a Pool.
type Option func(*Pool)

// WithMetrics publishes pool activity to m.
func WithMetrics(m *Metrics) Option {
	return func(p *Pool) { p.metrics = m }
}

// WithLogger sets the logger used for job failures and shutdown. The default
// discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a pool with the specified number of workers. Workers are
// spawned immediately and run until Shutdown has drained the queue.
// If numWorkers <= 0, uses par.NumProcs().
func New(numWorkers int, opts ...Option) *Pool {
	if numWorkers <= 0 {
		numWorkers = par.NumProcs()
	}

	p := &Pool{
		numWorkers: numWorkers,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	p.cond = sync.NewCond(&p.mu)
	p.root = &Group{p: p}
	for _, opt := range opts {
		opt(p)
	}
	p.metrics.setWorkers(numWorkers)

	p.wg.Add(numWorkers)
	for i := range numWorkers {
		go p.worker(i)
	}

	return p
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Closed reports whether Shutdown has been called.
func (p *Pool) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

// Submitter returns a handle for submitting jobs from outside the pool. It is
// a small value and may be copied freely.
func (p *Pool) Submitter() Submitter {
	return p.root.Submitter()
}

// Submit enqueues job without blocking.
func (p *Pool) Submit(job Job) error {
	return p.root.Submit(job)
}

// NewGroup opens a group of jobs that can be waited on independently of the
// rest of the pool.
func (p *Pool) NewGroup() *Group {
	return &Group{p: p}
}

// Shutdown closes the pool to outside submissions and blocks until all queued
// jobs, including jobs submitted by running jobs, have finished and every
// worker has exited. It returns the first panic raised by a job submitted
// through Pool.Submit or Pool.Submitter, as a *par.PanicError.
// Calling Shutdown multiple times is safe; later calls wait the same way and
// return the same error.
func (p *Pool) Shutdown() error {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.cond.Broadcast()
		p.mu.Unlock()
	})
	p.wg.Wait()

	p.logger.Debug("workerpool shut down",
		"workers", p.numWorkers,
		"completed", p.completed.Load(),
		"failed", p.failed.Load(),
		"dropped", p.dropped.Load())
	return p.root.Err()
}

// Err returns the first failure among root group jobs so far, or nil.
func (p *Pool) Err() error {
	return p.root.Err()
}

// Stats returns a snapshot of the pool counters.
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	pending := p.pending
	queued := len(p.queue)
	p.mu.Unlock()

	return Stats{
		Workers:   p.numWorkers,
		Submitted: p.submitted.Load(),
		Completed: p.completed.Load(),
		Failed:    p.failed.Load(),
		Dropped:   p.dropped.Load(),
		Pending:   pending,
		Queued:    queued,
	}
}

// Stats is a point-in-time view of pool activity.
type Stats struct {
	Workers   int
	Submitted int64
	Completed int64
	Failed    int64
	Dropped   int64
	// Pending counts queued and running jobs.
	Pending int
	Queued  int
}

func (p *Pool) enqueue(item workItem, fromJob bool) error {
	g := item.group
	if g.aborted.Load() {
		return ErrAborted
	}

	p.mu.Lock()
	// A running job keeps pending > 0, so the workers are still alive to pick
	// up what it submits even after close.
	if p.closed && !fromJob {
		p.mu.Unlock()
		return ErrClosed
	}
	g.wg.Add(1)
	p.queue = append(p.queue, item)
	p.pending++
	queued := len(p.queue)
	p.cond.Signal()
	p.mu.Unlock()

	p.submitted.Add(1)
	p.metrics.submitted(queued)
	return nil
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for {
		item, ok := p.next()
		if !ok {
			return
		}
		p.run(id, item)
	}
}

// next blocks until a job is available, or returns false once the pool is
// closed and nothing is queued or running.
func (p *Pool) next() (workItem, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for len(p.queue) == 0 {
		if p.closed && p.pending == 0 {
			return workItem{}, false
		}
		p.cond.Wait()
	}

	item := p.queue[0]
	p.queue[0] = workItem{}
	p.queue = p.queue[1:]
	if len(p.queue) == 0 {
		p.queue = nil
	}
	p.metrics.dequeued(len(p.queue))
	return item, true
}

func (p *Pool) run(id int, item workItem) {
	defer p.done(item.group)

	if item.group.aborted.Load() {
		p.dropped.Add(1)
		p.metrics.dropped()
		return
	}

	p.metrics.started()
	defer func() {
		p.metrics.finished()
		if r := recover(); r != nil {
			p.fail(id, item.group, par.NewPanicError(r))
			return
		}
		p.completed.Add(1)
		p.metrics.completed()
	}()

	item.fn(Submitter{g: item.group, fromJob: true})
}

// done retires one pending job and wakes idle workers when the pool has fully
// drained.
func (p *Pool) done(g *Group) {
	p.mu.Lock()
	p.pending--
	if p.pending == 0 && p.closed {
		p.cond.Broadcast()
	}
	p.mu.Unlock()
	g.wg.Done()
}

func (p *Pool) fail(workerID int, g *Group, pe *par.PanicError) {
	p.failed.Add(1)
	p.metrics.failed()
	if g.fault.CompareAndSwap(nil, pe) {
		g.aborted.Store(true)
		p.logger.Error("workerpool job panicked", "worker", workerID, "panic", pe.Value)
		return
	}
	p.logger.Debug("workerpool job panicked after first failure", "worker", workerID, "panic", pe.Value)
}

// Group is a set of jobs, and the jobs they submit, that one caller waits on.
// The first panic in a group aborts only that group.
type Group struct {
	p       *Pool
	wg      sync.WaitGroup
	aborted atomic.Bool
	fault   atomic.Pointer[par.PanicError]
}

// Submitter returns a handle that submits into g from outside the pool.
func (g *Group) Submitter() Submitter {
	return Submitter{g: g}
}

// Submit enqueues job in g without blocking.
func (g *Group) Submit(job Job) error {
	return g.p.enqueue(workItem{fn: job, group: g}, false)
}

// Wait blocks until every job of g, including jobs they submitted, has
// finished or been dropped, then returns the group's first failure.
// Wait must not be called from a job of the same pool: it would hold a worker
// while waiting on work that may need it.
func (g *Group) Wait() error {
	g.wg.Wait()
	return g.Err()
}

// Err returns the first failure recorded in g so far, or nil.
func (g *Group) Err() error {
	if f := g.fault.Load(); f != nil {
		return f
	}
	return nil
}

// Submitter enqueues jobs on a Pool. The Submitter passed to a running job
// may submit during shutdown; one obtained from Pool.Submitter or
// Group.Submitter may not.
type Submitter struct {
	g       *Group
	fromJob bool
}

// Submit enqueues job without blocking.
func (s Submitter) Submit(job Job) error {
	return s.g.p.enqueue(workItem{fn: job, group: s.g}, s.fromJob)
}

// Pool returns the pool s submits to.
func (s Submitter) Pool() *Pool {
	return s.g.p
}
