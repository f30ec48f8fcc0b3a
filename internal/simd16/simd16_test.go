// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package simd16

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBroadcastAndEq(t *testing.T) {
	v := Broadcast(7)
	for _, b := range v {
		require.Equal(t, byte(7), b)
	}

	other := Vector{}
	other[3] = 7
	eq := Eq(v, other)
	for i, b := range eq {
		if i == 3 {
			require.Equal(t, byte(0xff), b)
		} else {
			require.Equal(t, byte(0), b)
		}
	}
}

func TestSelect(t *testing.T) {
	mask := Vector{}
	mask[0], mask[5] = 0xff, 0xff
	got := Select(mask, 0x11)
	want := Vector{}
	want[0], want[5] = 0x11, 0x11
	require.Equal(t, want, got)
}

func TestShuffle(t *testing.T) {
	src := Vector{}
	for i := range src {
		src[i] = byte(i)
	}
	indices := Vector{}
	for i := range indices {
		indices[i] = byte(Width - 1 - i)
	}
	got := Shuffle(src, indices)
	for i := range got {
		require.Equal(t, byte(Width-1-i), got[i])
	}
}

func TestShl1(t *testing.T) {
	v := Vector{}
	v[0] = 0b0000_0001
	v[1] = 0b1000_0001 // top bit discarded on shift
	got := Shl1(v)
	require.Equal(t, byte(0b0000_0010), got[0])
	require.Equal(t, byte(0b0000_0010), got[1])
}

func TestBitMask(t *testing.T) {
	v := Vector{}
	v[2] = 0b0000_0100 // bit 2 set
	v[9] = 0b0000_0100
	require.Equal(t, uint16(1<<2|1<<9), BitMask(v, 2))
	require.Equal(t, uint16(0), BitMask(v, 0))
}
