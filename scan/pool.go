package scan

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"
)

// Pool runs probe tasks with at most maxRoutines of them unsettled at once.
type Pool struct {
	prober      Prober
	timeout     time.Duration
	maxRoutines int
}

func NewPool(prober Prober, timeout time.Duration, parallelism int) (*Pool, error) {
	if parallelism < 1 {
		return nil, configError("maxConnections", "must be at least 1, got %d", parallelism)
	}
	if timeout <= 0 {
		return nil, configError("timeout", "must be positive, got %s", timeout)
	}
	if prober == nil {
		return nil, configError("prober", "must be set")
	}
	return &Pool{
		prober:      prober,
		timeout:     timeout,
		maxRoutines: parallelism,
	}, nil
}

// Run dispatches tasks in order and hands each result to observe as soon as it
// settles. observe is only ever called from one goroutine at a time. Run
// returns once every dispatched task has settled; if ctx is cancelled it stops
// dispatching and returns ctx.Err().
func (p *Pool) Run(ctx context.Context, tasks []ProbeTask, observe func(ProbeResult)) error {

	sem := semaphore.NewWeighted(int64(p.maxRoutines))
	resultChan := make(chan ProbeResult, p.maxRoutines)
	wg := &sync.WaitGroup{}

	var dispatchErr error

	go func() {
		for _, task := range tasks {
			if err := sem.Acquire(ctx, 1); err != nil {
				dispatchErr = err
				break
			}
			wg.Add(1)
			go func(task ProbeTask) {
				defer wg.Done()
				result := Race(ctx, p.prober, task, p.timeout)
				sem.Release(1)
				resultChan <- result
			}(task)
		}
		wg.Wait()
		close(resultChan)
	}()

	for result := range resultChan {
		logrus.WithFields(logrus.Fields{
			"host":   result.Host,
			"port":   result.Port,
			"delta":  result.Delta,
			"status": result.Status,
		}).Debug("Probe settled")
		if observe != nil {
			observe(result)
		}
	}

	if dispatchErr != nil {
		return dispatchErr
	}
	return ctx.Err()
}
