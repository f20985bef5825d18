package drb

import "log"

// A Buffer holds the fixed set of entries of one bank. Every entry is on the
// free list, on the pending queue, or checked out as the bank's current
// request; the total never changes.
type Buffer struct {
	capacity int
	free     []*Entry
	pending  []*Entry
}

// NewBuffer creates a buffer with the given number of entries.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		log.Panic("buffer capacity must be positive")
	}

	b := &Buffer{capacity: capacity}
	for i := 0; i < capacity; i++ {
		b.free = append(b.free, &Entry{})
	}

	return b
}

// TryAcquire takes an entry off the free list, or returns nil when the
// buffer is exhausted.
func (b *Buffer) TryAcquire() *Entry {
	if len(b.free) == 0 {
		return nil
	}

	e := b.free[0]
	b.free = b.free[1:]

	return e
}

// Release resets an entry and returns it to the free list.
func (b *Buffer) Release(e *Entry) {
	e.reset()
	b.free = append(b.free, e)
}

// Push appends an entry to the back of the pending queue.
func (b *Buffer) Push(e *Entry) {
	if len(b.pending)+len(b.free) >= b.capacity {
		log.Panic("pending queue overflow")
	}

	b.pending = append(b.pending, e)
}

// Remove takes an entry out of the pending queue.
func (b *Buffer) Remove(e *Entry) {
	for i, p := range b.pending {
		if p == e {
			b.pending = append(b.pending[:i], b.pending[i+1:]...)
			return
		}
	}

	log.Panic("entry is not pending")
}

// Pending returns the pending queue in order. Schedulers may reorder the
// returned slice in place.
func (b *Buffer) Pending() []*Entry {
	return b.pending
}

// PendingEmpty returns true when no request is waiting.
func (b *Buffer) PendingEmpty() bool {
	return len(b.pending) == 0
}

// PendingSize returns the number of waiting requests.
func (b *Buffer) PendingSize() int {
	return len(b.pending)
}

// FreeSize returns the number of unused entries.
func (b *Buffer) FreeSize() int {
	return len(b.free)
}

// Capacity returns the total number of entries.
func (b *Buffer) Capacity() int {
	return b.capacity
}
