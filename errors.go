package fifo

import "github.com/zeebo/errs"

// Error classes returned by the package. Use the Has method of a
// class to check whether an error belongs to it.
var (
	// EmptyError is the class of errors returned when the head of an
	// empty queue is accessed or removed.
	EmptyError = errs.Class("fifo: empty queue")

	// InvalidOperationError is the class of errors returned when an
	// iterator that is at the end, or whose node has been removed from
	// its queue, is dereferenced or advanced.
	InvalidOperationError = errs.Class("fifo: invalid operation")

	// AllocError is the class of errors returned when a queue's
	// [Allocator] refuses to provide a node. It wraps the error returned
	// by the Allocator.
	AllocError = errs.Class("fifo: allocation failed")

	// CloneError is the class of errors returned when copying an element
	// with a cloner set by [WithCloner] fails. It wraps the error
	// returned by the cloner.
	CloneError = errs.Class("fifo: element copy failed")
)
