// Package chunk splits a buffer into fixed-size pieces and runs a
// per-piece function over them, optionally in parallel.
package chunk

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// IndexError reports the index of the piece whose function failed.
type IndexError struct {
	Index int
	Err   error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("chunk %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error.
func (e *IndexError) Unwrap() error {
	return e.Err
}

// Count returns the number of pieces of at most size bytes needed to cover
// total bytes. size must be positive.
func Count(total, size int) int {
	return (total + size - 1) / size
}

// Bounds returns the half-open byte range of piece i. The final piece may be
// shorter than size.
func Bounds(total, size, i int) (start, end int) {
	start = i * size
	end = start + size
	if end > total {
		end = total
	}
	if start > total {
		start = total
	}
	return start, end
}

// Each calls fn for every index in [0, n) on at most workers goroutines and
// waits for all calls to finish.
func Each(n, workers int, fn func(i int)) {
	if workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			fn(i)
			return nil
		})
	}
	_ = g.Wait()
}

// Run calls fn for every index in [0, n) on at most workers goroutines and
// waits for all calls to finish. With workers <= 1 the calls run in order on
// the calling goroutine and stop at the first failure.
//
// When several calls fail, the error for the lowest index is returned,
// wrapped in an *IndexError, so the result does not depend on scheduling.
func Run(n, workers int, fn func(i int) error) error {
	if workers <= 1 || n <= 1 {
		for i := 0; i < n; i++ {
			if err := fn(i); err != nil {
				return &IndexError{Index: i, Err: err}
			}
		}
		return nil
	}

	errs := make([]error, n)
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			errs[i] = fn(i)
			return nil
		})
	}
	_ = g.Wait()

	for i, err := range errs {
		if err != nil {
			return &IndexError{Index: i, Err: err}
		}
	}
	return nil
}
