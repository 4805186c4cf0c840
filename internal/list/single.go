package list

import "iter"

// Single is a singly-linked list that exclusively owns its nodes. It
// only keeps a reference to the head, so appending walks the entire
// chain to find the tail.
//
// The zero value is an empty list.
type Single[T any] struct {
	head *SingleNode[T]
	n    int
}

// Len returns the number of nodes in the list.
func (ls *Single[T]) Len() int {
	return ls.n
}

// Head returns the first node of the list, or nil if the list is
// empty.
func (ls *Single[T]) Head() *SingleNode[T] {
	return ls.head
}

// Append adds v as a new node at the tail of the list and returns
// that node. It is O(n).
func (ls *Single[T]) Append(v T) *SingleNode[T] {
	n := ls.last().insert(v)
	if ls.head == nil {
		ls.head = n
	}
	ls.n++

	return n
}

// Pop unlinks the current head node from the list. It returns false
// if the list was already empty.
func (ls *Single[T]) Pop() bool {
	if ls.head == nil {
		return false
	}

	n := ls.head
	ls.head = n.next
	ls.n--
	n.unlink()

	return true
}

// Clear unlinks every node of the list, head first, calling release
// once for each. release may be nil.
func (ls *Single[T]) Clear(release func()) {
	for ls.Pop() {
		if release != nil {
			release()
		}
	}
}

// All returns an iterator over the elements of the list.
func (ls *Single[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range ls.Nodes() {
			if !yield(n.Val) {
				return
			}
		}
	}
}

// Nodes returns an iterator over the nodes of the list. The list must
// not be modified during iteration.
func (ls *Single[T]) Nodes() iter.Seq[*SingleNode[T]] {
	return func(yield func(*SingleNode[T]) bool) {
		cur := ls.head
		for cur != nil {
			if !yield(cur) {
				return
			}
			cur = cur.next
		}
	}
}

func (ls *Single[T]) last() *SingleNode[T] {
	cur := ls.head
	if cur == nil {
		return nil
	}
	for cur.next != nil {
		cur = cur.next
	}
	return cur
}

// SingleNode is a node of a [Single].
type SingleNode[T any] struct {
	Val    T
	next   *SingleNode[T]
	linked bool
}

// Next returns the node following n, or nil if n is the tail or has
// been unlinked.
func (n *SingleNode[T]) Next() *SingleNode[T] {
	return n.next
}

// Linked reports whether n is still part of a list. Once a node is
// unlinked it never becomes linked again.
func (n *SingleNode[T]) Linked() bool {
	return n.linked
}

func (n *SingleNode[T]) insert(v T) *SingleNode[T] {
	next := &SingleNode[T]{Val: v, linked: true}
	if n == nil {
		return next
	}

	next.next = n.next
	n.next = next
	return next
}

func (n *SingleNode[T]) unlink() {
	var zero T
	n.Val = zero
	n.next = nil
	n.linked = false
}
