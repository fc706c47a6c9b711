// Package parallel is a cooperative add-on that marks a dynamic scope as
// parallel: independent units of work fan out onto their own goroutines and
// join at scope exit, with no ordering guarantee among units. It sits
// outside the lazy-traversal engine, which stays single-threaded.
package parallel

import (
	"sync"

	"vista/views"
)

// Scope tracks the units spawned inside one parallel region.
type Scope struct {
	wg sync.WaitGroup

	mu       sync.Mutex
	panicVal any
	panicked bool
}

// Run executes fn inside a fresh parallel scope and joins every spawned
// unit before returning. If any unit panicked, the first captured panic is
// re-raised after the join.
func Run(fn func(*Scope)) {
	s := &Scope{}
	fn(s)
	s.wg.Wait()
	if s.panicked {
		panic(s.panicVal)
	}
}

// Go spawns one independent unit of work on its own goroutine.
func (s *Scope) Go(unit func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() {
			if p := recover(); p != nil {
				s.mu.Lock()
				if !s.panicked {
					s.panicked = true
					s.panicVal = p
				}
				s.mu.Unlock()
			}
		}()
		unit()
	}()
}

// ForEach runs fn on every element of a finite view, one unit per element,
// joining before it returns. Element processing order is unspecified; fn
// must be safe for concurrent use.
func ForEach[T any](v views.View[T], fn func(T)) {
	Run(func(s *Scope) {
		v.ForEach(func(x T) {
			s.Go(func() { fn(x) })
		})
	})
}
