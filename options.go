package fifo

// An Allocator accounts for the nodes of a [Queue]. Alloc is called
// before every node is created and may refuse by returning an error,
// in which case the operation that needed the node fails and the
// queue is left unchanged. Free is called exactly once for every node
// that was successfully allocated and later discarded.
type Allocator interface {
	Alloc() error
	Free()
}

// An Option configures a [Queue] created by [New].
type Option[T any] func(*Queue[T])

// WithAllocator sets the Allocator used for the queue's nodes. By
// default every allocation succeeds and nothing is tracked.
func WithAllocator[T any](a Allocator) Option[T] {
	return func(q *Queue[T]) {
		q.alloc = a
	}
}

// WithCloner sets the function used to copy elements into the queue.
// It is called for every value passed to PushBack and for every
// element copied by Clone, Assign, and [Filter]. By default elements
// are copied by plain assignment, so an element containing pointers
// shares what they point to with its copies.
func WithCloner[T any](clone func(T) (T, error)) Option[T] {
	return func(q *Queue[T]) {
		q.clone = clone
	}
}
