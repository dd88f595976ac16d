package arrkit

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// SortJob describes one independent sort over a caller-owned buffer.
type SortJob struct {
	Base        []byte
	Count       int
	TypeID      string
	AlgorithmID string
	OrderID     string
}

// StatusSkipped marks a batch job that never ran because the context was
// cancelled first. It is distinct from every engine status code.
const StatusSkipped = -5

// SortBatch runs independent sort jobs concurrently and returns one status
// per job, in job order. Each individual sort remains a single-threaded
// synchronous call; concurrency exists only across jobs, so the job buffers
// must be disjoint.
//
// A cancelled context skips jobs that have not started; those jobs report
// StatusSkipped and the cancellation also surfaces through the returned
// error. Started jobs always run to completion; a single sort cannot be
// interrupted.
func (e *Engine) SortBatch(ctx context.Context, jobs []SortJob) ([]int, error) {
	start := time.Now()
	statuses := make([]int, len(jobs))
	for i := range statuses {
		statuses[i] = StatusSkipped
	}

	var failed atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			statuses[i] = e.Sort(job.Base, job.Count, job.TypeID, job.AlgorithmID, job.OrderID)
			if statuses[i] < 0 {
				failed.Add(1)
			}
			return nil
		})
	}
	err := g.Wait()

	e.metrics.RecordBatch(len(jobs), int(failed.Load()), time.Since(start))
	e.logger.LogBatch(len(jobs), int(failed.Load()))
	return statuses, err
}
