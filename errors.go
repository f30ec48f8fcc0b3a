// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bytetrie16

import "errors"

// Sentinel errors returned by New, plus the panic cause Traverse wraps for
// an invalid query length. Wrap with fmt.Errorf("%w: ...") at the
// call site for additional context; use errors.Is to test for a specific
// cause.
var (
	// ErrTooManyEdges is returned when the input edge set has more than
	// [MaxEdges] members.
	ErrTooManyEdges = errors.New("bytetrie16: too many edges")

	// ErrTooDeep is returned when an edge lies deeper than [MaxDepth] hops
	// from the root.
	ErrTooDeep = errors.New("bytetrie16: tree deeper than max depth")

	// ErrBadParent is returned when the input edge set is not a
	// well-formed tree: a parent reference points to a number that isn't
	// present, parent references form a cycle, two edges assigned the
	// same number exist, two siblings share a label, or an edge has both
	// HasValue and HasBranch set.
	ErrBadParent = errors.New("bytetrie16: malformed edge set")

	// ErrInvalidQueryLength is the panic value's wrapped cause when
	// Traverse is called with a queryLen outside 1..8. Traverse panics
	// rather than returning an error because, unlike a malformed edge
	// set, an invalid query length is always a caller bug at a call site
	// that already has a validated trie in hand.
	ErrInvalidQueryLength = errors.New("bytetrie16: invalid query length")
)
