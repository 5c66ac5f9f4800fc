package pipeline

import (
	"context"
	"errors"
	"slices"
	"testing"
)

type countingIter struct {
	items  []int
	pulled int
	closed bool
}

func (it *countingIter) Next(ctx context.Context) (int, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	if it.pulled >= len(it.items) {
		return 0, false, nil
	}
	v := it.items[it.pulled]
	it.pulled++
	return v, true, nil
}

func (it *countingIter) Close() error {
	it.closed = true
	return nil
}

func fromIter(it Iterator[int]) *Pipeline[int] {
	return FromFunc(func(context.Context) Iterator[int] { return it })
}

func TestFromSlice_Collect(t *testing.T) {
	got, err := Collect(context.Background(), FromSlice([]int{1, 2, 3}))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromSlice_Empty(t *testing.T) {
	got, err := Collect(context.Background(), FromSlice([]int{}))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestCollect_ClosesIterator(t *testing.T) {
	it := &countingIter{items: []int{4, 5}}
	got, err := Collect(context.Background(), fromIter(it))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{4, 5}) {
		t.Errorf("got %v, want [4 5]", got)
	}
	if !it.closed {
		t.Error("expected Collect to close the iterator")
	}
}

func TestFromFunc_Restartable(t *testing.T) {
	p := FromFunc(func(context.Context) Iterator[int] {
		return &countingIter{items: []int{1, 2}}
	})
	for range 2 {
		got, err := Collect(context.Background(), p)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(got, []int{1, 2}) {
			t.Errorf("got %v, want [1 2]", got)
		}
	}
}

func TestTap_ErrorKeepsEarlierValues(t *testing.T) {
	boom := errors.New("boom")
	p := Tap(FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) error {
		if n == 2 {
			return boom
		}
		return nil
	})
	got, err := Collect(context.Background(), p)
	if !errors.Is(err, boom) {
		t.Fatalf("got %v, want boom", err)
	}
	if !slices.Equal(got, []int{1}) {
		t.Errorf("got %v, want values before the error", got)
	}
}

func TestFilter(t *testing.T) {
	evens := Filter(FromSlice([]int{1, 2, 3, 4}), func(n int) bool { return n%2 == 0 })
	got, err := Collect(context.Background(), evens)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{2, 4}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTap_Error(t *testing.T) {
	boom := errors.New("tap")
	p := Tap(FromSlice([]int{1}), func(context.Context, int) error { return boom })
	if _, err := Collect(context.Background(), p); !errors.Is(err, boom) {
		t.Errorf("got %v, want tap error", err)
	}
}

func TestTake_StopsPulling(t *testing.T) {
	it := &countingIter{items: []int{1, 2, 3, 4, 5}}
	got, err := Collect(context.Background(), Take(fromIter(it), 2))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
	if it.pulled != 2 {
		t.Errorf("pulled %d values, want 2", it.pulled)
	}
	if !it.closed {
		t.Error("expected Take to close its source")
	}
}

func TestReduce_Restarts(t *testing.T) {
	sum := Reduce(FromSlice([]int{1, 2, 3}), 0, func(acc, n int) int { return acc + n })
	for range 2 {
		got, err := Collect(context.Background(), sum)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(got, []int{6}) {
			t.Errorf("got %v, want [6]", got)
		}
	}
}

func TestReduce_Empty(t *testing.T) {
	got, err := Collect(context.Background(), Reduce(FromSlice([]int{}), 10, func(acc, n int) int { return acc + n }))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{10}) {
		t.Errorf("got %v, want [10]", got)
	}
}

func TestContext_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Collect(ctx, fromIter(&countingIter{items: []int{1}}))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestChained_Pipeline(t *testing.T) {
	var tapped []int
	quads := Filter(FromSlice([]int{2, 4, 6, 8, 10, 12, 14, 16, 18, 20}), func(n int) bool { return n%4 == 0 })
	observed := Tap(quads, func(_ context.Context, n int) error {
		tapped = append(tapped, n)
		return nil
	})
	sum := Reduce(observed, 0, func(acc, n int) int { return acc + n })

	got, err := Collect(context.Background(), sum)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != 60 {
		t.Errorf("expected [60], got %v", got)
	}
	if !slices.Equal(tapped, []int{4, 8, 12, 16, 20}) {
		t.Errorf("tapped = %v, want [4 8 12 16 20]", tapped)
	}
}
