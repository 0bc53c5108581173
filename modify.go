package mvar

// Modify atomically replaces the cell's value with f(value).
//
// Modify is Take followed by Put: the slot stays empty while f runs, so
// any concurrent Take or Read blocks until the new value lands. This is
// the cell's mutual-exclusion idiom — f has exclusive access to the
// value for the span of the call.
//
// If f panics, the panic propagates to the caller and the cell is left
// empty; there is no compensating Put, and goroutines blocked on the
// cell stay blocked. Recovery is the caller's responsibility.
//
// Modify panics if f is nil.
func (m *MVar[T]) Modify(f func(T) T) {
	if f == nil {
		panic("mvar: Modify requires a non-nil function")
	}
	v := m.Take()
	m.Put(f(v))
}

// ModifyErr is [MVar.Modify] for functions that can fail. If f returns
// an error, ModifyErr returns that error and the cell is left empty —
// the old value is not restored. Callers that want rollback must Put
// the old value back themselves.
//
// ModifyErr panics if f is nil.
func (m *MVar[T]) ModifyErr(f func(T) (T, error)) error {
	if f == nil {
		panic("mvar: ModifyErr requires a non-nil function")
	}
	v := m.Take()
	next, err := f(v)
	if err != nil {
		return err
	}
	m.Put(next)
	return nil
}

// Swap stores v and returns the value previously held, blocking while
// the cell is empty.
//
// Swap is Take followed by Put(v). If the Take step was refilled by a
// waiting putter, the slot is full again and the Put step blocks until
// a later Take empties it.
func (m *MVar[T]) Swap(v T) T {
	old := m.Take()
	m.Put(v)
	return old
}
