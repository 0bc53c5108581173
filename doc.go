// Package mvar provides a single-slot synchronized cell (an MVar) for Go.
//
// An [MVar] is a box that is either empty or holds exactly one value.
// Goroutines coordinate by moving a value in and out of the box:
//
//   - [MVar.Take] removes the value, blocking while the cell is empty.
//   - [MVar.Put] stores a value, blocking while the cell is full.
//   - [MVar.Read] observes the value without removing it, blocking while
//     the cell is empty.
//   - [MVar.Modify] atomically replaces the value through a function,
//     holding exclusive access for the duration of the call.
//   - [MVar.IsEmpty] reports whether the cell is currently empty.
//
// Non-blocking variants are available as [MVar.TryTake], [MVar.TryPut] and
// [MVar.TryRead], and [MVar.Swap] exchanges the value in one step.
//
// # Fairness
//
// Goroutines blocked on the same operation are resumed strictly in arrival
// order. Each cell keeps three FIFO queues — takers, putters and readers —
// and a state transition wakes at most one waiter per queue:
//
//   - Take on a full cell empties the slot and, if a putter is waiting,
//     refills the slot with that putter's value in the same step.
//   - Put on an empty cell fills the slot and then delivers the value to
//     the oldest waiting taker and to the oldest waiting reader, if any.
//
// There is no ordering guarantee across queues: a waiting reader is only
// ever woken by an empty-to-full Put, so it can wait indefinitely behind
// traffic that never triggers that transition.
//
// # Handoff behavior
//
// When Put delivers a value directly to a waiting taker, the slot keeps
// the value; it is not cleared on the taker's behalf. The same value can
// therefore be observed again by a later Read or Take. Code that needs
// move semantics for every value should pair each Put with exactly one
// Take and avoid mixing waiting takers with eager ones on the same cell.
//
// # Blocking contract
//
// Blocking operations wait indefinitely; there are no timeouts and no way
// to abandon a pending operation. A Take on a cell that is never fed
// blocks forever. Callers that need deadlines must layer them outside the
// cell.
//
// # Typical uses
//
//	// One-shot handoff between a producer and a consumer.
//	box := mvar.NewEmpty[string]()
//	go func() { box.Put("ready") }()
//	msg := box.Take()
//
//	// Serialized state: Modify holds the slot empty while f runs, so
//	// concurrent Take and Read calls wait until the new value lands.
//	state := mvar.NewFull(0)
//	state.Modify(func(n int) int { return n + 1 })
package mvar
