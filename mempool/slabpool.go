// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

// Package mempool provides a reusable byte-slab pool for encoder callers.
// The packet encoders write into caller-provided buffers sized by their
// Size pass; callers that encode in a loop can draw those buffers from a
// pool instead of allocating per packet.
package mempool

import (
	"sync"
)

var slabPool = NewSlab(0)

// Get takes a slab of at least size bytes from the default pool and returns
// it with its length set to size.
func Get(size int) []byte { return slabPool.Get(size) }

// Put returns a slab to the default pool.
func Put(x []byte) { slabPool.Put(x) }

// SlabPool hands out byte slices of a requested length.
type SlabPool interface {
	Get(size int) []byte
	Put(x []byte)
}

// NewSlab returns a slab pool. The max specifies the largest capacity the
// pool will retain; a slab grown beyond max is dropped rather than pooled.
// If max <= 0, no limit is enforced.
func NewSlab(max int) SlabPool {
	if max > 0 {
		return newSlabWithCap(max)
	}

	return newSlab()
}

// Slab is a byte-slab pool.
type Slab struct {
	pool *sync.Pool
}

func newSlab() *Slab {
	return &Slab{
		pool: &sync.Pool{
			New: func() any { return new([]byte) },
		},
	}
}

// Get a slab from the pool, growing it if it cannot hold size bytes.
func (s *Slab) Get(size int) []byte {
	b := s.pool.Get().(*[]byte)
	if cap(*b) < size {
		*b = make([]byte, size)
	}
	return (*b)[:size]
}

// Put the slab back into the pool for reuse.
func (s *Slab) Put(x []byte) {
	s.pool.Put(&x)
}

// SlabWithCap is a slab pool that caps the capacity of retained slabs.
type SlabWithCap struct {
	sp  *Slab
	max int
}

func newSlabWithCap(max int) *SlabWithCap {
	return &SlabWithCap{
		sp:  newSlab(),
		max: max,
	}
}

// Get a slab from the pool.
func (s *SlabWithCap) Get(size int) []byte {
	return s.sp.Get(size)
}

// Put the slab back into the pool if its capacity doesn't exceed the limit.
func (s *SlabWithCap) Put(x []byte) {
	if cap(x) > s.max {
		return
	}
	s.sp.Put(x)
}
