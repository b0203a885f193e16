// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2024 twinemq

package mempool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlabGetLength(t *testing.T) {
	p := NewSlab(0)
	b := p.Get(64)
	require.Len(t, b, 64)
	p.Put(b)

	b = p.Get(16)
	require.Len(t, b, 16)
}

func TestSlabGrow(t *testing.T) {
	p := NewSlab(0)
	b := p.Get(8)
	require.Len(t, b, 8)
	p.Put(b)

	b = p.Get(1024)
	require.Len(t, b, 1024)
	require.GreaterOrEqual(t, cap(b), 1024)
}

func TestSlabWithCapDropsOversize(t *testing.T) {
	p := NewSlab(32)
	b := p.Get(64)
	require.Len(t, b, 64)
	p.Put(b) // exceeds cap; dropped

	b = p.Get(16)
	require.Len(t, b, 16)
}

func TestDefaultPool(t *testing.T) {
	b := Get(128)
	require.Len(t, b, 128)
	Put(b)
}
