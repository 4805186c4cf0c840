package fifo

// Filter returns a new Queue, configured like q, holding copies of the
// elements of q for which keep returns true, in their original order.
// keep is called exactly once for each element, from head to tail. q
// is not modified by Filter itself.
//
// If an element can not be added to the new Queue, or keep removes the
// element it was called with from q, everything already added to the
// new Queue is released and the error is returned.
func Filter[T any](q *Queue[T], keep func(T) bool) (*Queue[T], error) {
	filtered := q.empty()
	fail := func(err error) (*Queue[T], error) {
		filtered.Clear()
		return nil, err
	}

	it := q.ConstBegin()
	for it != q.ConstEnd() {
		v, err := it.Value()
		if err != nil {
			return fail(err)
		}

		if keep(v) {
			err = filtered.PushBack(v)
			if err != nil {
				return fail(err)
			}
		}

		err = it.Next()
		if err != nil {
			return fail(err)
		}
	}

	return filtered, nil
}

// Transform calls f with a pointer to each element of q in turn, from
// head to tail, allowing f to modify the elements in place.
//
// If f removes the element it was called with from q, Transform stops
// and returns an error of class [InvalidOperationError]. Elements
// already visited keep their modifications.
func Transform[T any](q *Queue[T], f func(*T)) error {
	it := q.Begin()
	for it != q.End() {
		v, err := it.Value()
		if err != nil {
			return err
		}

		f(v)

		err = it.Next()
		if err != nil {
			return err
		}
	}

	return nil
}
