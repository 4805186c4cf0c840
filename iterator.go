package fifo

import "deedles.dev/fifo/internal/list"

type cursor[T any] struct {
	q *Queue[T]
	n *list.SingleNode[T]
}

func (c *cursor[T]) node() (*list.SingleNode[T], error) {
	if c.n == nil {
		return nil, InvalidOperationError.New("iterator is at end")
	}
	if !c.n.Linked() {
		return nil, InvalidOperationError.New("element was removed from queue")
	}
	return c.n, nil
}

func (c *cursor[T]) next() error {
	n, err := c.node()
	if err != nil {
		return err
	}

	c.n = n.Next()
	return nil
}

// An Iterator is a position in a [Queue] through which the element at
// that position can be modified. Iterators are obtained from
// [Queue.Begin] and [Queue.End]. The zero value is an end iterator that
// belongs to no Queue.
//
// An Iterator does not keep the element it is positioned at in the
// Queue. Once that element is removed, the Iterator is invalid and any
// operation other than comparison returns an error of class
// [InvalidOperationError].
//
// Iterators are comparable. Two iterators over the same Queue are equal
// if they are positioned at the same element or are both at the end.
// Comparing iterators over different queues is meaningless. Note that
// == also compares the Queue an iterator belongs to, so the zero value
// is not == to any Queue's End, while Equal, which only compares
// positions, reports them as equal.
type Iterator[T any] struct {
	c cursor[T]
}

// Begin returns an Iterator positioned at the head of q, or at the end
// if q is empty.
func (q *Queue[T]) Begin() Iterator[T] {
	return Iterator[T]{c: cursor[T]{q: q, n: q.chain.Head()}}
}

// End returns an Iterator positioned past the last element of q.
func (q *Queue[T]) End() Iterator[T] {
	return Iterator[T]{c: cursor[T]{q: q}}
}

// Value returns a pointer to the element that the iterator is
// positioned at.
func (it *Iterator[T]) Value() (*T, error) {
	n, err := it.c.node()
	if err != nil {
		return nil, err
	}
	return &n.Val, nil
}

// Next advances the iterator to the following element, or to the end
// if there is none. If the iterator is already at the end or is
// invalid, it is left as it is and an error is returned.
func (it *Iterator[T]) Next() error {
	return it.c.next()
}

// Equal reports whether it and other are positioned at the same
// element.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.c.n == other.c.n
}

// A ConstIterator is like an [Iterator] but only provides copies of
// elements, so the Queue can not be modified through it. ConstIterators
// are obtained from [Queue.ConstBegin] and [Queue.ConstEnd].
type ConstIterator[T any] struct {
	c cursor[T]
}

// ConstBegin returns a ConstIterator positioned at the head of q, or at
// the end if q is empty.
func (q *Queue[T]) ConstBegin() ConstIterator[T] {
	return ConstIterator[T]{c: cursor[T]{q: q, n: q.chain.Head()}}
}

// ConstEnd returns a ConstIterator positioned past the last element of
// q.
func (q *Queue[T]) ConstEnd() ConstIterator[T] {
	return ConstIterator[T]{c: cursor[T]{q: q}}
}

// Value returns a copy of the element that the iterator is positioned
// at.
func (it *ConstIterator[T]) Value() (v T, err error) {
	n, err := it.c.node()
	if err != nil {
		return v, err
	}
	return n.Val, nil
}

// Next advances the iterator. See [Iterator.Next].
func (it *ConstIterator[T]) Next() error {
	return it.c.next()
}

// Equal reports whether it and other are positioned at the same
// element.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.c.n == other.c.n
}
