package vec

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// parallelThreshold is the smallest input ParallelMap spreads over workers.
// Shorter inputs are mapped serially.
const parallelThreshold = 256

// ParallelMap is like Map but calls f from several goroutines, each owning a
// contiguous chunk of x. Results keep the order of x. The first error
// returned by f, or the cancellation of ctx, stops the remaining work and is
// returned.
//
// f must be safe for concurrent use.
func ParallelMap(ctx context.Context, x any, f func(v any, i int) (any, error)) (Vector, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v := Vectorize(x)
	res := make(Vector, len(v))

	if len(v) < parallelThreshold {
		for i, e := range v {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			r, err := f(e, i)
			if err != nil {
				return nil, err
			}
			res[i] = r
		}
		return res, nil
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(v) + workers - 1) / workers

	var (
		wg       sync.WaitGroup
		firstErr error
		stopped  atomic.Bool
	)
	stop := func(err error) {
		if stopped.CompareAndSwap(false, true) {
			firstErr = err
		}
	}
	for start := 0; start < len(v); start += chunk {
		end := min(start+chunk, len(v))
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				if stopped.Load() {
					return
				}
				if err := ctx.Err(); err != nil {
					stop(err)
					return
				}
				r, err := f(v[i], i)
				if err != nil {
					stop(err)
					return
				}
				res[i] = r
			}
		}(start, end)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return res, nil
}
