// Package coordinator runs independent tasks on a fixed number of workers.
// Tasks are handed to workers through an unbuffered channel so producers
// block while every worker is busy. Each task yields its own result; a
// failing task never stops the others.
package coordinator

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cihub/seelog"
)

// DefaultWorkers is used when a pool is created with a non-positive size
const DefaultWorkers = 4

// Result pairs the outcome of one task with the index of its input
type Result[R any] struct {
	Index int
	Value R
	Err   error
}

// Stats counts tasks processed by a pool
type Stats struct {
	Started   int64
	Succeeded int64
	Failed    int64
	Skipped   int64
	Elapsed   time.Duration
}

// Pool is a bounded worker pool
type Pool struct {
	workers int
	name    string

	started   atomic.Int64
	succeeded atomic.Int64
	failed    atomic.Int64
	skipped   atomic.Int64
	elapsed   time.Duration
}

// NewPool creates a pool with the given number of workers. The name only
// appears in log lines.
func NewPool(name string, workers int) *Pool {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Pool{name: name, workers: workers}
}

func (p *Pool) Workers() int {
	return p.workers
}

func (p *Pool) Stats() Stats {
	return Stats{
		Started:   p.started.Load(),
		Succeeded: p.succeeded.Load(),
		Failed:    p.failed.Load(),
		Skipped:   p.skipped.Load(),
		Elapsed:   p.elapsed,
	}
}

type task[I any] struct {
	index int
	item  I
}

// Run processes items with fn on the pool's workers and returns one result per
// item, in input order. When ctx is cancelled the items not yet started are
// reported with the context error.
func Run[I any, R any](ctx context.Context, p *Pool, items []I, fn func(ctx context.Context, item I) (R, error)) []Result[R] {
	start := time.Now()
	results := make([]Result[R], len(items))
	for i := range results {
		results[i].Index = i
	}

	tasks := make(chan task[I])
	var wg sync.WaitGroup

	workers := p.workers
	if workers > len(items) {
		workers = len(items)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for t := range tasks {
				p.started.Add(1)
				value, err := fn(ctx, t.item)
				results[t.index].Value = value
				results[t.index].Err = err
				if err != nil {
					p.failed.Add(1)
					seelog.Debugf("pool name=%s: worker %d task %d failed: %v", p.name, workerID, t.index, err)
				} else {
					p.succeeded.Add(1)
				}
			}
		}(w)
	}

	next := 0
feed:
	for ; next < len(items); next++ {
		if ctx.Err() != nil {
			break
		}
		select {
		case tasks <- task[I]{index: next, item: items[next]}:
		case <-ctx.Done():
			break feed
		}
	}
	close(tasks)
	wg.Wait()

	for i := next; i < len(items); i++ {
		results[i].Err = ctx.Err()
		p.skipped.Add(1)
	}

	p.elapsed += time.Since(start)
	stats := p.Stats()
	seelog.Infof("pool name=%s: %d tasks, %d succeeded, %d failed, %d skipped in %s",
		p.name, len(items), stats.Succeeded, stats.Failed, stats.Skipped, stats.Elapsed.Round(time.Millisecond))
	return results
}
