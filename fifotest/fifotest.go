// Package fifotest provides helpers for testing code that uses
// [fifo.Queue], most importantly an [Allocator] that can be told to
// fail and that keeps track of how many nodes are live.
package fifotest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/zeebo/errs"

	"deedles.dev/fifo"
)

// ErrExhausted is returned by [Allocator.Alloc] once the Allocator's
// budget has been used up.
var ErrExhausted = errs.New("fifotest: allocation budget exhausted")

// An Allocator is a [fifo.Allocator] that only permits a limited
// number of allocations and counts the nodes that are currently live.
// It is not safe for concurrent use.
type Allocator struct {
	budget int
	live   int
	total  int
}

var _ fifo.Allocator = (*Allocator)(nil)

// NewAllocator returns an Allocator that permits budget allocations
// before failing. A negative budget never runs out.
func NewAllocator(budget int) *Allocator {
	return &Allocator{budget: budget}
}

// Alloc implements [fifo.Allocator].
func (a *Allocator) Alloc() error {
	if a.budget == 0 {
		return ErrExhausted
	}
	if a.budget > 0 {
		a.budget--
	}

	a.live++
	a.total++
	return nil
}

// Free implements [fifo.Allocator]. It panics if more nodes are freed
// than were allocated.
func (a *Allocator) Free() {
	if a.live == 0 {
		panic("fifotest: free without matching allocation")
	}
	a.live--
}

// SetBudget replaces the number of remaining allocations.
func (a *Allocator) SetBudget(budget int) {
	a.budget = budget
}

// Live returns the number of nodes allocated but not yet freed.
func (a *Allocator) Live() int {
	return a.live
}

// Total returns the number of successful allocations so far.
func (a *Allocator) Total() int {
	return a.total
}

// FailOn returns a cloner for use with [fifo.WithCloner] that copies
// every value except bad, for which it returns an error.
func FailOn[T comparable](bad T) func(T) (T, error) {
	return func(v T) (T, error) {
		if v == bad {
			return v, errs.New("fifotest: refusing to copy %v", v)
		}
		return v, nil
	}
}

// Collect returns the elements of q from head to tail, read through a
// [fifo.ConstIterator].
func Collect[T any](tb testing.TB, q *fifo.Queue[T]) []T {
	tb.Helper()

	var got []T
	it := q.ConstBegin()
	for it != q.ConstEnd() {
		v, err := it.Value()
		if err != nil {
			tb.Fatalf("%T.Value(): %v", it, err)
		}
		got = append(got, v)

		if err := it.Next(); err != nil {
			tb.Fatalf("%T.Next(): %v", it, err)
		}
	}
	return got
}

// RequireContents fails tb immediately if the elements of q are not
// want, in order, or if q's size disagrees with len(want). Nil and
// empty slices are treated as equal.
func RequireContents[T any](tb testing.TB, q *fifo.Queue[T], want []T, opts ...cmp.Option) {
	tb.Helper()

	opts = append(opts, cmpopts.EquateEmpty())
	if diff := cmp.Diff(want, Collect(tb, q), opts...); diff != "" {
		tb.Fatalf("%T contents; diff (-want +got):\n%s", q, diff)
	}
	if got := q.Size(); got != len(want) {
		tb.Fatalf("%T.Size() = %d; want %d", q, got, len(want))
	}
}
