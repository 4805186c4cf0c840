package fifo

import "deedles.dev/fifo/internal/list"

// A Queue holds values and returns them in FIFO order. A zero value
// Queue is empty and ready to use. Use [New] to create a Queue with
// options.
//
// A Queue exclusively owns the nodes that hold its elements. It must
// not be copied by value, as the copy would share those nodes. Use
// Clone or Assign instead, both of which copy every element into new
// nodes.
//
// Appending to a Queue walks the entire list to find its tail, so
// PushBack is O(n) in the size of the Queue.
type Queue[T any] struct {
	_ noCopy

	chain list.Single[T]
	alloc Allocator
	clone func(T) (T, error)
}

// New returns an empty Queue configured with opts.
func New[T any](opts ...Option[T]) *Queue[T] {
	q := new(Queue[T])
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// empty returns a new empty Queue with the same configuration as q.
func (q *Queue[T]) empty() *Queue[T] {
	return &Queue[T]{
		alloc: q.alloc,
		clone: q.clone,
	}
}

// reserve obtains an allocation for one node and copies v for storage
// in it. If it returns a nil error, the caller is responsible for
// either linking a node or calling release.
func (q *Queue[T]) reserve(v T) (c T, err error) {
	if q.alloc != nil {
		err := q.alloc.Alloc()
		if err != nil {
			return c, AllocError.Wrap(err)
		}
	}

	if q.clone == nil {
		return v, nil
	}

	c, err = q.clone(v)
	if err != nil {
		q.release()
		return c, CloneError.Wrap(err)
	}
	return c, nil
}

func (q *Queue[T]) release() {
	if q.alloc != nil {
		q.alloc.Free()
	}
}

func (q *Queue[T]) appendTo(chain *list.Single[T], v T) error {
	c, err := q.reserve(v)
	if err != nil {
		return err
	}

	chain.Append(c)
	return nil
}

// copyFrom builds a new chain holding copies of the elements of src
// using q's configuration. If it fails, including because a cloner
// removed the element being copied from src, every node allocated
// along the way has already been released.
func (q *Queue[T]) copyFrom(src *Queue[T]) (list.Single[T], error) {
	var chain list.Single[T]
	fail := func(err error) (list.Single[T], error) {
		chain.Clear(q.release)
		return chain, err
	}

	it := src.ConstBegin()
	for it != src.ConstEnd() {
		v, err := it.Value()
		if err != nil {
			return fail(err)
		}

		err = q.appendTo(&chain, v)
		if err != nil {
			return fail(err)
		}

		err = it.Next()
		if err != nil {
			return fail(err)
		}
	}

	return chain, nil
}

// PushBack adds a copy of v to the tail of the queue. If the node can
// not be allocated or v can not be copied, the queue is left unchanged
// and an error of class [AllocError] or [CloneError] is returned.
func (q *Queue[T]) PushBack(v T) error {
	return q.appendTo(&q.chain, v)
}

// Front returns a pointer to the element at the head of the queue. The
// pointer is only meaningful until that element is removed. It returns
// an error of class [EmptyError] if the queue is empty.
func (q *Queue[T]) Front() (*T, error) {
	head := q.chain.Head()
	if head == nil {
		return nil, EmptyError.New("front of empty queue")
	}
	return &head.Val, nil
}

// Peek returns a copy of the element at the head of the queue. It
// returns an error of class [EmptyError] if the queue is empty.
func (q *Queue[T]) Peek() (v T, err error) {
	head := q.chain.Head()
	if head == nil {
		return v, EmptyError.New("peek into empty queue")
	}
	return head.Val, nil
}

// PopFront removes the element at the head of the queue. Iterators
// positioned at that element become invalid. It returns an error of
// class [EmptyError], without modifying anything, if the queue is
// empty.
func (q *Queue[T]) PopFront() error {
	if !q.chain.Pop() {
		return EmptyError.New("pop from empty queue")
	}

	q.release()
	return nil
}

// Size returns the number of elements in the queue.
func (q *Queue[T]) Size() int {
	return q.chain.Len()
}

// Clear removes every element from the queue, invalidating all
// iterators positioned at them. The queue remains usable.
func (q *Queue[T]) Clear() {
	q.chain.Clear(q.release)
}

// Clone returns a new Queue with the same configuration as q holding
// copies of its elements in the same order. The two queues share no
// storage. If copying fails, every node allocated for the new Queue is
// released and the error is returned.
func (q *Queue[T]) Clone() (*Queue[T], error) {
	c := q.empty()
	chain, err := c.copyFrom(q)
	if err != nil {
		return nil, err
	}

	c.chain = chain
	return c, nil
}

// Assign replaces the contents of q with copies of the elements of
// src, keeping q's own configuration. Either the assignment fully
// succeeds, or it returns an error and q holds exactly what it held
// before the call. On success, iterators into q's previous contents
// become invalid.
//
// Assigning a Queue to itself does nothing.
func (q *Queue[T]) Assign(src *Queue[T]) error {
	if q == src {
		return nil
	}

	chain, err := q.copyFrom(src)
	if err != nil {
		return err
	}

	old := q.chain
	q.chain = chain
	old.Clear(q.release)

	return nil
}
