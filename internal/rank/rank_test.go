// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package rank

import (
	"math/rand/v2"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/require"
)

// TestOfAgainstBitset cross-checks Of against a count of the bits below idx
// tested one by one in a github.com/bits-and-blooms/bitset, the same library bart imports
// directly for its rank machinery (allot_tbl.go, overlaps.go, node.go).
func TestOfAgainstBitset(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 9))

	for trial := 0; trial < 500; trial++ {
		mask := uint16(rng.Uint32())
		idx := uint(rng.IntN(17))

		bs := bitset.New(16)
		for i := uint(0); i < 16; i++ {
			if mask&(1<<i) != 0 {
				bs.Set(i)
			}
		}

		want := 0
		for i := uint(0); i < idx; i++ {
			if bs.Test(i) {
				want++
			}
		}

		require.Equal(t, want, Of(mask, idx), "mask=%016b idx=%d", mask, idx)
	}
}

func TestOfBoundaries(t *testing.T) {
	require.Equal(t, 0, Of(0xffff, 0))
	require.Equal(t, 16, Of(0xffff, 16))
	require.Equal(t, 1, Of(0b1, 1))
	require.Equal(t, 0, Of(0b10, 1))
}
