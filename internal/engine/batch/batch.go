// Package batch splits work into fixed-size chunks.
package batch

import "context"

// Result is the outcome of one batch.
type Result[T any] struct {
	Items []T
	Err   error
}

// Batches splits items into consecutive chunks of at most size elements.
// A size below one yields a single chunk.
func Batches[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if size < 1 {
		size = len(items)
	}

	out := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, items[start:end:end])
	}
	return out
}

// Run calls fn once per chunk, in order, and collects each chunk's result.
// A failing chunk does not stop later chunks. Run stops early when ctx is done.
func Run[T any](ctx context.Context, items []T, size int, fn func(context.Context, []T) error) []Result[T] {
	var results []Result[T]
	for _, chunk := range Batches(items, size) {
		if err := ctx.Err(); err != nil {
			results = append(results, Result[T]{Items: chunk, Err: err})
			continue
		}
		results = append(results, Result[T]{Items: chunk, Err: fn(ctx, chunk)})
	}
	return results
}

// Failed returns the results that carry an error.
func Failed[T any](results []Result[T]) []Result[T] {
	var out []Result[T]
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}
