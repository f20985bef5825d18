// Package stats accumulates the counters emitted by the simulation and can
// persist them to a SQLite database on exit.
package stats

import "sync"

// A Counter is one named accumulated value.
type Counter struct {
	Name  string
	Value float64
}

// A Registry accumulates named counters. Counters are created on first use
// and keep their creation order.
type Registry struct {
	lock     sync.Mutex
	order    []string
	counters map[string]float64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]float64),
	}
}

// Add accumulates value into the named counter.
func (r *Registry) Add(name string, value float64) {
	r.lock.Lock()
	defer r.lock.Unlock()

	if _, ok := r.counters[name]; !ok {
		r.order = append(r.order, name)
	}

	r.counters[name] += value
}

// Get returns the current value of a counter. Unknown counters read as 0.
func (r *Registry) Get(name string) float64 {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.counters[name]
}

// Snapshot returns all counters in creation order.
func (r *Registry) Snapshot() []Counter {
	r.lock.Lock()
	defer r.lock.Unlock()

	counters := make([]Counter, 0, len(r.order))
	for _, name := range r.order {
		counters = append(counters, Counter{
			Name:  name,
			Value: r.counters[name],
		})
	}

	return counters
}
