package reduction

import (
	"context"
	"fmt"
	"sync"

	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/network"
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/parallel"
	"github.com/ayoub-Ouba/reduction-probleme-tunnel/internal/satformula"
)

// Job is one independent reduction to run as part of a batch: find a
// Length-step path through Network.
type Job struct {
	Name    string
	Network *network.Tunnel
	Length  int
}

// Result is the outcome of running one Job.
type Result struct {
	Job    Job
	Status satformula.Status
	Path   []Step
	Err    error
}

// Summary reports aggregate execution statistics and any deadlock alerts
// observed while a batch ran, alongside the per-job Results.
type Summary struct {
	Stats              parallel.ExecutionStats
	Alerts             []parallel.DeadlockAlert
	ActiveTasksAtEnd   int
	PotentialDeadlocks int64
}

// SolveBatch runs every job in jobs concurrently over a bounded worker
// pool, each on its own satformula.Context — a Context is not safe for
// concurrent use, so sharing one across jobs is not an option. Results are
// returned in the same order as jobs regardless of completion order.
//
// Each job runs under the pool's deadlock detector: a job still running when
// the detector's timeout passes is reported as a job error instead of
// stalling the batch forever; the reduction and solve themselves do not
// observe the cancelled context and are not interrupted. The returned Summary carries the pool's final statistics and any
// deadlock alerts raised along the way, for callers that want to surface
// them (tunnelctl's batch mode prints them; tests mostly ignore them).
func SolveBatch(ctx context.Context, jobs []Job, maxWorkers int) ([]Result, Summary) {
	pool := parallel.NewDynamicWorkerPool(maxWorkers, 1)
	detector := pool.GetDeadlockDetector()

	var alerts []parallel.DeadlockAlert
	stopAlerts := make(chan struct{})
	alertsDone := make(chan struct{})
	go func() {
		defer close(alertsDone)
		for {
			select {
			case alert := <-detector.GetAlerts():
				alerts = append(alerts, alert)
				switch alert.Type {
				case parallel.AlertPotentialDeadlock, parallel.AlertSystemStall:
					pool.GetStats().RecordPotentialDeadlock()
				case parallel.AlertTaskTimeout:
					pool.GetStats().RecordTimeout()
				}
			case <-stopAlerts:
				return
			}
		}
	}()

	results := make([]Result, len(jobs))
	var wg sync.WaitGroup

	for i, job := range jobs {
		i, job := i, job
		taskID := fmt.Sprintf("job-%d-%s", i, job.Name)

		wg.Add(1)
		task := func() {
			defer wg.Done()
			err := detector.ExecuteWithDeadlockProtection(ctx, taskID, job.Name, func(taskCtx context.Context) error {
				results[i] = runJob(job)
				return results[i].Err
			})
			if err != nil && results[i].Err == nil {
				results[i] = Result{Job: job, Err: err}
			}
		}

		if err := pool.Submit(ctx, task); err != nil {
			wg.Done()
			results[i] = Result{Job: job, Err: fmt.Errorf("submit job %q: %w", job.Name, err)}
		}
	}

	wg.Wait()
	close(stopAlerts)
	<-alertsDone

	activeTasksAtEnd := detector.GetActiveTaskCount()
	potentialDeadlocks := detector.GetPotentialDeadlocks()

	pool.Shutdown()

	summary := Summary{
		Stats:              pool.GetStats().GetStats(),
		Alerts:             alerts,
		ActiveTasksAtEnd:   activeTasksAtEnd,
		PotentialDeadlocks: potentialDeadlocks,
	}
	return results, summary
}

func runJob(job Job) Result {
	fctx := satformula.NewContext()

	formula := Reduce(fctx, job.Network, job.Length)

	status, model, err := fctx.Solve(formula)
	if err != nil {
		return Result{Job: job, Err: err}
	}

	result := Result{Job: job, Status: status}
	if status == satformula.Sat {
		path, err := DecodePath(fctx, model, job.Network, job.Length)
		if err != nil {
			result.Err = err
		} else {
			result.Path = path
		}
	}
	return result
}
