// Package fifo provides a generic FIFO queue backed by a singly-linked
// list, along with iterators over it and a couple of functions built
// on top of those iterators.
//
// A [Queue] is not safe for concurrent use. Callers that share one
// between goroutines must provide their own synchronization.
package fifo

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
