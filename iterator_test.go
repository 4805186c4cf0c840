package fifo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"deedles.dev/fifo"
	"deedles.dev/fifo/fifotest"
)

func TestIterateEmpty(t *testing.T) {
	var q fifo.Queue[int]
	require.True(t, q.Begin() == q.End())
	require.True(t, q.Begin().Equal(q.End()))
	require.True(t, q.ConstBegin() == q.ConstEnd())

	var n int
	for it := q.Begin(); it != q.End(); it.Next() {
		n++
	}
	require.Zero(t, n)
}

func TestIterator(t *testing.T) {
	var q fifo.Queue[int]
	for i := range 3 {
		require.NoError(t, q.PushBack(i))
	}

	var got []int
	for it := q.Begin(); it != q.End(); it.Next() {
		v, err := it.Value()
		require.NoError(t, err)
		got = append(got, *v)
		*v *= 10
	}
	require.Equal(t, []int{0, 1, 2}, got)
	fifotest.RequireContents(t, &q, []int{0, 10, 20})

	it := q.Begin()
	other := q.Begin()
	require.True(t, it.Equal(other))
	require.NoError(t, it.Next())
	require.False(t, it.Equal(other))
	require.NoError(t, other.Next())
	require.True(t, it == other)
}

func TestIteratorEnd(t *testing.T) {
	var q fifo.Queue[string]
	require.NoError(t, q.PushBack("only"))

	it := q.Begin()
	require.NoError(t, it.Next())
	require.True(t, it == q.End())

	v, err := it.Value()
	require.True(t, fifo.InvalidOperationError.Has(err), err)
	require.False(t, fifo.EmptyError.Has(err))
	require.Nil(t, v)

	err = it.Next()
	require.True(t, fifo.InvalidOperationError.Has(err), err)
	require.True(t, it == q.End(), "failed advance must not move the iterator")

	cit := q.ConstEnd()
	_, err = cit.Value()
	require.True(t, fifo.InvalidOperationError.Has(err), err)
	require.True(t, fifo.InvalidOperationError.Has(cit.Next()))

	var zero fifo.Iterator[string]
	_, err = zero.Value()
	require.True(t, fifo.InvalidOperationError.Has(err), err)
	require.True(t, zero.Equal(q.End()))
	require.False(t, zero == q.End(), "== also compares the owning queue")

	fifotest.RequireContents(t, &q, []string{"only"})
}

func TestConstIterator(t *testing.T) {
	var q fifo.Queue[int]
	for i := range 4 {
		require.NoError(t, q.PushBack(i))
	}

	var got []int
	for it := q.ConstBegin(); it != q.ConstEnd(); it.Next() {
		v, err := it.Value()
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Equal(t, []int{0, 1, 2, 3}, got)
	fifotest.RequireContents(t, &q, []int{0, 1, 2, 3})

	it := q.ConstBegin()
	require.True(t, it.Equal(q.ConstBegin()))
	require.NoError(t, it.Next())
	require.False(t, it.Equal(q.ConstBegin()))
}

func TestIteratorInvalidation(t *testing.T) {
	var q fifo.Queue[int]
	for i := range 3 {
		require.NoError(t, q.PushBack(i))
	}

	head := q.Begin()
	second := q.Begin()
	require.NoError(t, second.Next())
	chead := q.ConstBegin()

	require.NoError(t, q.PopFront())

	_, err := head.Value()
	require.True(t, fifo.InvalidOperationError.Has(err), err)
	require.True(t, fifo.InvalidOperationError.Has(head.Next()))
	_, err = chead.Value()
	require.True(t, fifo.InvalidOperationError.Has(err), err)

	v, err := second.Value()
	require.NoError(t, err, "iterators at remaining elements stay valid")
	require.Equal(t, 1, *v)
	require.True(t, second == q.Begin())

	var src fifo.Queue[int]
	require.NoError(t, src.PushBack(9))
	require.NoError(t, q.Assign(&src))
	_, err = second.Value()
	require.True(t, fifo.InvalidOperationError.Has(err), err)

	it := q.Begin()
	q.Clear()
	require.True(t, fifo.InvalidOperationError.Has(it.Next()))
}
