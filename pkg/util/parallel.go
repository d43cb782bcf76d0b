package util

import (
	"context"
	"sync"
	"sync/atomic"
)

// Parallel runs fn over inputs with at most workerLimit goroutines. The first
// error cancels the context handed to the remaining calls and is returned once
// every worker has stopped.
func Parallel[T any](ctx context.Context, inputs []T, workerLimit int, fn func(context.Context, T) error) error {
	if len(inputs) == 0 {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if workerLimit <= 0 {
		workerLimit = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan T)
	errCh := make(chan error, 1)
	var done atomic.Int64

	// workers
	wg := sync.WaitGroup{}
	for i := 0; i < workerLimit; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				if err := fn(ctx, item); err != nil {
					select {
					case errCh <- err:
						cancel() // stop others
					default:
					}
					return
				}
				done.Add(1)
			}
		}()
	}

	// feed tasks
	go func() {
		defer close(tasks)
		for _, item := range inputs {
			select {
			case <-ctx.Done():
				return
			case tasks <- item:
			}
		}
	}()

	wg.Wait()

	select {
	case err := <-errCh:
		return err
	default:
	}
	// a late cancellation does not undo work that already finished
	if done.Load() == int64(len(inputs)) {
		return nil
	}
	return ctx.Err()
}

// All runs every job concurrently and waits for all of them.
func All(ctx context.Context, jobs ...func(context.Context) error) error {
	return Parallel(ctx, jobs, len(jobs), func(ctx context.Context, job func(context.Context) error) error {
		return job(ctx)
	})
}
