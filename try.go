package mvar

// TryTake attempts to remove the cell's value without blocking.
// It returns the value and true if the cell was full, or the zero value
// and false if it was empty.
//
// A successful TryTake performs the same transition as [MVar.Take]: if a
// Put is waiting, its value refills the slot and that Put completes.
func (m *MVar[T]) TryTake() (T, bool) {
	m.mu.Lock()
	if !m.full {
		m.mu.Unlock()
		var zero T
		return zero, false
	}
	v := m.takeLocked()
	m.mu.Unlock()
	return v, true
}

// TryPut attempts to store v without blocking. It returns true if the
// cell was empty and v was stored, false if the cell was full and v was
// discarded.
//
// A successful TryPut performs the same transition as [MVar.Put],
// including servicing at most one waiting taker and one waiting reader.
func (m *MVar[T]) TryPut(v T) bool {
	m.mu.Lock()
	if m.full {
		m.mu.Unlock()
		return false
	}
	m.putLocked(v)
	m.mu.Unlock()
	return true
}

// TryRead returns the cell's value without removing it and without
// blocking. It returns the zero value and false if the cell is empty.
func (m *MVar[T]) TryRead() (T, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.full {
		var zero T
		return zero, false
	}
	return m.value, true
}
