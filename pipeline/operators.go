package pipeline

import "context"

// Filter drops the values keep rejects.
func Filter[T any](p *Pipeline[T], keep func(T) bool) *Pipeline[T] {
	return FromFunc(func(ctx context.Context) Iterator[T] {
		return &filterIter[T]{src: p.open(ctx), keep: keep}
	})
}

// Tap calls fn with each value on its way through. An error from fn ends the
// run with that error.
func Tap[T any](p *Pipeline[T], fn func(context.Context, T) error) *Pipeline[T] {
	return FromFunc(func(ctx context.Context) Iterator[T] {
		return &tapIter[T]{src: p.open(ctx), fn: fn}
	})
}

// Take ends the stream after n values without pulling an (n+1)th.
func Take[T any](p *Pipeline[T], n int) *Pipeline[T] {
	return FromFunc(func(ctx context.Context) Iterator[T] {
		return &takeIter[T]{src: p.open(ctx), left: n}
	})
}

// Reduce folds the stream into one value, starting from init. It yields
// that value once the source is exhausted, even for an empty source.
func Reduce[T, R any](p *Pipeline[T], init R, fold func(R, T) R) *Pipeline[R] {
	return FromFunc(func(ctx context.Context) Iterator[R] {
		return &reduceIter[T, R]{src: p.open(ctx), acc: init, fold: fold}
	})
}

type filterIter[T any] struct {
	src  Iterator[T]
	keep func(T) bool
}

func (it *filterIter[T]) Next(ctx context.Context) (T, bool, error) {
	for {
		v, ok, err := it.src.Next(ctx)
		if err != nil || !ok || it.keep(v) {
			return v, ok && err == nil, err
		}
	}
}

func (it *filterIter[T]) Close() error { return it.src.Close() }

type tapIter[T any] struct {
	src Iterator[T]
	fn  func(context.Context, T) error
}

func (it *tapIter[T]) Next(ctx context.Context) (T, bool, error) {
	v, ok, err := it.src.Next(ctx)
	if err != nil || !ok {
		return v, false, err
	}
	if err := it.fn(ctx, v); err != nil {
		var zero T
		return zero, false, err
	}
	return v, true, nil
}

func (it *tapIter[T]) Close() error { return it.src.Close() }

type takeIter[T any] struct {
	src  Iterator[T]
	left int
}

func (it *takeIter[T]) Next(ctx context.Context) (T, bool, error) {
	if it.left <= 0 {
		var zero T
		return zero, false, nil
	}
	v, ok, err := it.src.Next(ctx)
	if err != nil || !ok {
		return v, false, err
	}
	it.left--
	return v, true, nil
}

func (it *takeIter[T]) Close() error { return it.src.Close() }

type reduceIter[T, R any] struct {
	src  Iterator[T]
	acc  R
	fold func(R, T) R
	done bool
}

func (it *reduceIter[T, R]) Next(ctx context.Context) (R, bool, error) {
	var zero R
	if it.done {
		return zero, false, nil
	}
	for {
		v, ok, err := it.src.Next(ctx)
		if err != nil {
			return zero, false, err
		}
		if !ok {
			it.done = true
			return it.acc, true, nil
		}
		it.acc = it.fold(it.acc, v)
	}
}

func (it *reduceIter[T, R]) Close() error { return it.src.Close() }
