package bake

import (
	"log/slog"
	"sync"
	"time"

	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/bake/metrics"
)

// Job is a unit of work executed by a Pool worker.
//
// Run is required. Cleanup is optional; when present it is invoked exactly
// once: after Run returns on normal execution, or on its own when the pool is
// closed with the job still queued (the job is discarded and Run never
// executes). Ownership of anything captured by the closures transfers to the
// pool at Enqueue and to exactly one worker at dequeue, so no two goroutines
// ever touch a job's state concurrently.
type Job struct {
	Run     func()
	Cleanup func()
}

// Pool executes enqueued Jobs on a fixed number of worker goroutines.
//
// Workers dequeue in FIFO submission order; completion order across workers
// is not guaranteed. Wait provides a barrier: when it returns, every job
// enqueued strictly before the call has finished executing. Close shuts the
// pool down, discarding (never running) jobs still queued at that moment.
//
// All methods are safe for concurrent use. A Pool must not be reused after
// Close.
type Pool struct {
	// nc prevents accidental copying of the pool.
	nc noCopy

	mu    sync.Mutex
	cond  *sync.Cond
	queue jobQueue

	// pending counts jobs enqueued but not yet finished executing: jobs in
	// the queue plus jobs currently held by a worker. Guarded by mu.
	pending int

	// stopping is set once by Close. Guarded by mu.
	stopping bool

	workers   sync.WaitGroup
	closeOnce sync.Once

	logger *slog.Logger

	enqueued  metrics.Counter
	completed metrics.Counter
	discarded metrics.Counter
	backlog   metrics.UpDownCounter
	duration  metrics.Histogram
}

// noCopy is a vet-recognized marker to discourage copying types with this
// field embedded. It works with the "-copylocks" analyzer via the presence of
// Lock/Unlock methods.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// NewPool creates a Pool with exactly n workers, all spawned immediately and
// blocking until work is enqueued or the pool is closed. The worker count is
// immutable for the life of the pool; n must be at least 1.
func NewPool(n uint, opts ...Option) (*Pool, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if n == 0 {
		return nil, errorc.With(ErrInvalidConfig, errorc.String("", "NewPool requires n > 0"))
	}

	p := &Pool{
		queue:     newJobQueue(cfg.queueCapacity),
		logger:    cfg.logger,
		enqueued:  cfg.metrics.Counter("bake_jobs_enqueued", metrics.WithUnit("1")),
		completed: cfg.metrics.Counter("bake_jobs_completed", metrics.WithUnit("1")),
		discarded: cfg.metrics.Counter("bake_jobs_discarded", metrics.WithUnit("1")),
		backlog:   cfg.metrics.UpDownCounter("bake_jobs_pending", metrics.WithUnit("1")),
		duration: cfg.metrics.Histogram("bake_job_duration_seconds",
			metrics.WithUnit("seconds"), metrics.WithDescription("wall time of Job.Run plus Cleanup")),
	}
	p.cond = sync.NewCond(&p.mu)

	p.workers.Add(int(n))
	for i := uint(0); i < n; i++ {
		go p.worker(i)
	}
	p.logger.Debug("pool started", "workers", n)
	return p, nil
}

// Enqueue appends a job at the tail of the queue and wakes one waiting
// worker. It is safe to call from multiple producer goroutines. After Close
// it fails with ErrPoolClosed; a job with no Run function fails with
// ErrNilJob.
func (p *Pool) Enqueue(j Job) error {
	if j.Run == nil {
		return ErrNilJob
	}

	p.mu.Lock()
	if p.stopping {
		p.mu.Unlock()
		return ErrPoolClosed
	}
	p.queue.push(j)
	p.pending++
	p.cond.Signal()
	p.mu.Unlock()

	p.enqueued.Add(1)
	p.backlog.Add(1)
	return nil
}

// Wait blocks until every job enqueued before the call has finished
// executing, or until the pool is closed. Jobs enqueued concurrently with or
// after the call have no ordering guarantee relative to it. Calling Wait
// again with no intervening Enqueue returns immediately.
func (p *Pool) Wait() {
	p.mu.Lock()
	for p.pending > 0 && !p.stopping {
		p.cond.Wait()
	}
	p.mu.Unlock()
}

// Close shuts the pool down: it wakes every worker, joins them all, then
// discards any job still queued, invoking only its Cleanup. In-flight jobs
// run to completion; queued jobs never execute. Close is idempotent and
// safe for concurrent use; Enqueue fails with ErrPoolClosed afterwards.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.stopping = true
		p.cond.Broadcast()
		p.mu.Unlock()

		p.workers.Wait()

		p.mu.Lock()
		remaining := p.queue.takeAll()
		p.pending -= len(remaining)
		p.cond.Broadcast() // release any Wait callers observing the stop
		p.mu.Unlock()

		// Cleanups run outside the lock: a cleanup is arbitrary caller code.
		for _, j := range remaining {
			if j.Cleanup != nil {
				j.Cleanup()
			}
		}
		if n := len(remaining); n > 0 {
			p.discarded.Add(int64(n))
			p.backlog.Add(int64(-n))
		}
		p.logger.Debug("pool closed", "discarded", len(remaining))
	})
}

// worker is the loop run by each of the pool's goroutines.
func (p *Pool) worker(id uint) {
	defer p.workers.Done()
	for {
		p.mu.Lock()
		for !p.stopping && p.queue.empty() {
			p.cond.Wait()
		}
		if p.stopping {
			p.mu.Unlock()
			return
		}
		j := p.queue.pop()
		p.mu.Unlock()

		// Execution never holds the pool lock: jobs may be long-running
		// process launches.
		p.execute(id, j)

		p.mu.Lock()
		p.pending--
		p.cond.Broadcast() // both Wait callers and other workers may care
		p.mu.Unlock()

		p.completed.Add(1)
		p.backlog.Add(-1)
	}
}

// execute runs a single job with panic isolation, then its Cleanup.
func (p *Pool) execute(id uint, j Job) {
	start := time.Now()
	func() {
		defer func() {
			if rec := recover(); rec != nil {
				p.logger.Error("job panicked", "worker", id, "panic", rec)
			}
		}()
		j.Run()
	}()
	if j.Cleanup != nil {
		j.Cleanup()
	}
	p.duration.Record(time.Since(start).Seconds())
}
