// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bytetrie16

import (
	"fmt"
	"math/bits"

	"github.com/gaissmai/bytetrie16/internal/rank"
	"github.com/gaissmai/bytetrie16/internal/simd16"
)

// Traverse resolves query[0:queryLen] against t, returning one of None,
// Branch(rank) or Value(rank) in constant time: a fixed number of vector
// ops over the packed 16-byte arrays, independent of the tree's shape.
//
// query is a fixed 8-byte buffer; bytes at positions >= queryLen are
// ignored but must be present. queryLen must be in 1..8 — Traverse panics,
// wrapping [ErrInvalidQueryLength], if it is not. No allocation, no
// branching on tree content, no I/O.
func (t *ByteTrie16) Traverse(query [8]byte, queryLen int) Lookup {
	if queryLen < 1 || queryLen > MaxDepth {
		panic(fmt.Errorf("%w: %d", ErrInvalidQueryLength, queryLen))
	}

	edgesV := simd16.Vector(t.edges)
	nodesV := simd16.Vector(t.nodes)

	var parentIdx, rootMask, notRootMask simd16.Vector
	for s, nb := range nodesV {
		parentIdx[s] = nb & nodeParentMask
		if nb&nodeRootFlag != 0 {
			rootMask[s] = 0xff
		} else {
			notRootMask[s] = 0xff
		}
	}

	// edgeMatches[s] is an 8-bit value whose bit i is set iff
	// edges[s] == query[i] — §4.2.1.
	var edgeMatches simd16.Vector
	for i := 0; i < MaxDepth; i++ {
		eq := simd16.Eq(edgesV, simd16.Broadcast(query[i]))
		edgeMatches = simd16.Or(edgeMatches, simd16.Select(eq, 1<<uint(i)))
	}

	// M_0: only root edges are reachable in one hop — §4.2.2. rootMask's
	// lanes are already all-ones/all-zero, so ANDing it against
	// edgeMatches both selects root lanes and zeroes the rest in one op.
	var states [MaxDepth]simd16.Vector
	states[0] = simd16.And(edgeMatches, rootMask)

	// M_{d+1} = (shuffle(M_d, parents) << 1) & edgeMatches — §4.2.2,
	// performed exactly MaxDepth-1 times to produce M_0..M_7.
	//
	// Root slots carry arbitrary parent-slot bits (§4.1: "undefined"
	// when the root flag is set), so the shuffle gathers garbage into a
	// root's own lane. A root edge is by construction reachable in
	// exactly one hop, so its lane must never contribute a match at any
	// depth beyond 0 — the final AND against notRootMask is the "their
	// own lane is filtered by the next steps" §4.2.2 promises, forcing
	// every root lane back to zero regardless of what the shuffle fed it.
	for d := 0; d < MaxDepth-1; d++ {
		parentState := simd16.Shuffle(states[d], parentIdx)
		states[d+1] = simd16.And(simd16.And(simd16.Shl1(parentState), edgeMatches), notRootMask)
	}

	terminal := simd16.BitMask(states[queryLen-1], uint(queryLen-1))

	// Branch beats Value; within a class the lowest DFS slot wins — §4.2.4.
	if branchHit := terminal & t.branchesMask; branchHit != 0 {
		p := uint(bits.TrailingZeros16(branchHit))
		return Lookup{Kind: Branch, Rank: uint8(rank.Of(t.branchesMask, p))}
	}
	if valueHit := terminal & t.valuesMask; valueHit != 0 {
		p := uint(bits.TrailingZeros16(valueHit))
		return Lookup{Kind: Value, Rank: uint8(rank.Of(t.valuesMask, p))}
	}
	return Lookup{Kind: None}
}
