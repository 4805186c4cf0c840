package fifo

import "iter"

// All returns an iterator over the elements of the queue, from head to
// tail. The queue must not be modified during iteration.
func (q *Queue[T]) All() iter.Seq[T] {
	return q.chain.All()
}
