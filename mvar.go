package mvar

import "sync"

// MVar is a synchronized cell holding at most one value of type T.
//
// The zero value is not usable; create cells with [NewEmpty] or [NewFull].
// Cells are shared by pointer and must not be copied after first use.
type MVar[T any] struct {
	mu    sync.Mutex
	full  bool
	value T

	// FIFO wait queues. Taker and reader channels are buffered so that
	// wakeups never block inside the critical section; a putter carries
	// its pending value and is released by closing its done channel.
	takers  []chan T
	putters []pendingPut[T]
	readers []chan T
}

// pendingPut is a suspended Put: the value it will store once the slot
// empties, and the channel that releases the blocked caller.
type pendingPut[T any] struct {
	value T
	done  chan struct{}
}

// NewEmpty creates an empty cell.
func NewEmpty[T any]() *MVar[T] {
	return &MVar[T]{}
}

// NewFull creates a cell holding v.
func NewFull[T any](v T) *MVar[T] {
	return &MVar[T]{full: true, value: v}
}

// Take removes and returns the cell's value, blocking while the cell is
// empty.
//
// If a Put is waiting when Take empties the slot, that putter's value
// refills the slot in the same step and its Put call completes, so the
// cell can be full again immediately after Take returns. Waiting readers
// are not woken by this refill; only an empty-to-full [MVar.Put] services
// readers.
//
// A Take on a cell that is never fed blocks forever.
func (m *MVar[T]) Take() T {
	m.mu.Lock()
	if m.full {
		v := m.takeLocked()
		m.mu.Unlock()
		return v
	}

	ch := make(chan T, 1)
	m.takers = append(m.takers, ch)
	m.mu.Unlock()

	return <-ch
}

// Put stores v into the cell, blocking while the cell is full.
//
// On an empty cell Put fills the slot and then services at most one
// waiting taker and at most one waiting reader, both of which receive v.
// A taker woken this way gets the value directly and the slot keeps v as
// well, so the same value may be observed again later (see the package
// documentation on handoff behavior). Additional waiting takers and
// readers stay blocked until another transition wakes them.
//
// On a full cell Put joins the putter queue and blocks until a Take
// empties the slot and consumes this call's value.
func (m *MVar[T]) Put(v T) {
	m.mu.Lock()
	if !m.full {
		m.putLocked(v)
		m.mu.Unlock()
		return
	}

	p := pendingPut[T]{value: v, done: make(chan struct{})}
	m.putters = append(m.putters, p)
	m.mu.Unlock()

	<-p.done
}

// Read returns the cell's value without removing it, blocking while the
// cell is empty.
//
// Read never changes the cell's state: a full cell stays full and any
// number of consecutive Reads observe the same value. A blocked Read is
// woken only by an empty-to-full Put, and each such Put wakes only the
// oldest waiting reader; the rest wait for further transitions.
func (m *MVar[T]) Read() T {
	m.mu.Lock()
	if m.full {
		v := m.value
		m.mu.Unlock()
		return v
	}

	ch := make(chan T, 1)
	m.readers = append(m.readers, ch)
	m.mu.Unlock()

	return <-ch
}

// IsEmpty reports whether the cell is currently empty.
//
// The result is a snapshot: it may be stale by the time the caller acts
// on it. Use it for diagnostics, not for synchronization.
func (m *MVar[T]) IsEmpty() bool {
	m.mu.Lock()
	empty := !m.full
	m.mu.Unlock()
	return empty
}

// Waiters returns the number of goroutines currently blocked in Take,
// Put and Read on this cell, in that order.
//
// Like [MVar.IsEmpty] the counts are a snapshot and may be stale in
// concurrent contexts.
func (m *MVar[T]) Waiters() (takers, putters, readers int) {
	m.mu.Lock()
	takers = len(m.takers)
	putters = len(m.putters)
	readers = len(m.readers)
	m.mu.Unlock()
	return takers, putters, readers
}

// takeLocked empties the slot and returns its value, refilling from the
// oldest waiting putter if one is queued. Callers must hold m.mu and
// have checked m.full.
func (m *MVar[T]) takeLocked() T {
	v := m.value
	var zero T
	m.value = zero
	m.full = false

	if len(m.putters) > 0 {
		p := m.putters[0]
		m.putters = m.putters[1:]
		m.value = p.value
		m.full = true
		close(p.done)
	}

	return v
}

// putLocked fills the slot with v and services at most one waiting taker
// and one waiting reader. Callers must hold m.mu and have checked that
// the slot is empty.
func (m *MVar[T]) putLocked(v T) {
	m.value = v
	m.full = true

	if len(m.takers) > 0 {
		ch := m.takers[0]
		m.takers = m.takers[1:]
		// The taker receives v directly; the slot keeps v as well.
		ch <- v
	}
	if len(m.readers) > 0 {
		ch := m.readers[0]
		m.readers = m.readers[1:]
		ch <- v
	}
}
