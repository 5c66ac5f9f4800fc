package pipeline

import "context"

// Iterator pulls values one at a time. Read procedures return one per call.
type Iterator[T any] interface {
	// Next returns the next value, or ok=false once the stream is exhausted.
	Next(ctx context.Context) (value T, ok bool, err error)
	// Close stops the stream early and releases what it holds.
	Close() error
}

// Pipeline is a restartable stream: every terminal call opens a fresh
// iterator, so nothing is read until Collect pulls.
type Pipeline[T any] struct {
	open func(ctx context.Context) Iterator[T]
}

// FromSlice streams the items of a slice.
func FromSlice[T any](items []T) *Pipeline[T] {
	return FromFunc(func(context.Context) Iterator[T] {
		return &sliceIter[T]{items: items}
	})
}

// FromFunc streams whatever open returns, calling it once per run.
func FromFunc[T any](open func(ctx context.Context) Iterator[T]) *Pipeline[T] {
	return &Pipeline[T]{open: open}
}

// Collect runs p to the end. On error the values pulled so far are returned
// with it. The iterator is always closed.
func Collect[T any](ctx context.Context, p *Pipeline[T]) ([]T, error) {
	it := p.open(ctx)
	defer it.Close()

	var out []T
	for {
		v, ok, err := it.Next(ctx)
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

type sliceIter[T any] struct {
	items []T
	next  int
}

func (it *sliceIter[T]) Next(context.Context) (T, bool, error) {
	if it.next >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	it.next++
	return it.items[it.next-1], true, nil
}

func (it *sliceIter[T]) Close() error { return nil }
