// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bytetrie16 provides ByteTrie16, a compact, branchless lookup
// structure mapping short byte strings (keys of length 1 to 8) to one of
// three outcomes: a value rank, a branch rank, or a miss.
//
// A ByteTrie16 stores an edge-labelled rooted tree of at most 16 edges and
// depth at most 8 as two 16-byte arrays. Traversal resolves a query of up to
// 8 bytes against every slot of the tree in parallel, using byte broadcasts,
// equality masks, dynamic byte-shuffles and bitmask reductions rather than
// iterative pointer chasing — the same "wide, branchless, bit-parallel"
// style bart uses for its trie strides, scaled down to a fixed 16-edge,
// 8-deep bound.
//
// ByteTrie16 is immutable once built: New packs the edge set once, and
// Traverse is then a pure function of the two packed arrays and the query,
// safe to call concurrently from any number of goroutines without
// synchronization.
package bytetrie16
