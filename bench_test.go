package mvar_test

import (
	"sync"
	"testing"

	"github.com/baxromumarov/mvar"
)

// BenchmarkPutTakeUncontended measures a Put/Take pair on a cell with no
// waiters, the fast path through the per-cell lock.
func BenchmarkPutTakeUncontended(b *testing.B) {
	m := mvar.NewEmpty[int]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Put(i)
		_ = m.Take()
	}
}

// BenchmarkChannelCap1Baseline is the stdlib baseline: a send/receive
// pair on a buffered channel of capacity one.
func BenchmarkChannelCap1Baseline(b *testing.B) {
	ch := make(chan int, 1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ch <- i
		<-ch
	}
}

// BenchmarkHandoff measures cross-goroutine delivery: one producer puts,
// the main goroutine takes.
func BenchmarkHandoff(b *testing.B) {
	m := mvar.NewEmpty[int]()
	b.ReportAllocs()

	go func() {
		for i := 0; i < b.N; i++ {
			m.Put(i)
		}
	}()
	for i := 0; i < b.N; i++ {
		_ = m.Take()
	}
}

// BenchmarkChannelHandoffBaseline is the channel equivalent of
// BenchmarkHandoff.
func BenchmarkChannelHandoffBaseline(b *testing.B) {
	ch := make(chan int, 1)
	b.ReportAllocs()

	go func() {
		for i := 0; i < b.N; i++ {
			ch <- i
		}
	}()
	for i := 0; i < b.N; i++ {
		<-ch
	}
}

// BenchmarkModify measures a single-goroutine read-modify-write cycle.
func BenchmarkModify(b *testing.B) {
	m := mvar.NewFull(0)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m.Modify(func(n int) int { return n + 1 })
	}
}

// BenchmarkMutexBaseline is the raw sync.Mutex equivalent of
// BenchmarkModify.
func BenchmarkMutexBaseline(b *testing.B) {
	var mu sync.Mutex
	n := 0
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		mu.Lock()
		n++
		mu.Unlock()
	}
	_ = n
}

// BenchmarkTryTakeEmpty measures the non-blocking miss path.
func BenchmarkTryTakeEmpty(b *testing.B) {
	m := mvar.NewEmpty[int]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = m.TryTake()
	}
}
