// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Command bytetrie16gen reads a textual edge-list description and emits a
// Go source file containing the packed 16-byte arrays of a ByteTrie16,
// ready to embed as a compile-time literal.
//
// This is auxiliary tooling around the library, grounded in bart's own
// cmd/ directory (cmd/main.go, cmd/routes.go): a small standalone binary
// that exercises the package rather than a new core capability.
//
// Input lines look like:
//
//	<number> <parent> <label> <flag>
//
// parent is "root" or another line's number; label is a byte 0..255; flag
// is "-", "value" or "branch". Example:
//
//	0 root 1 -
//	1 0 3 value
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/gaissmai/bytetrie16"
)

func main() {
	log.SetFlags(0)

	var pkgName string
	flag.StringVar(&pkgName, "pkg", "main", "package name for the generated file")
	flag.Parse()

	var src io.Reader = os.Stdin
	if args := flag.Args(); len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			log.Fatalf("bytetrie16gen: %v", err)
		}
		defer f.Close()
		src = f
	}

	edges, err := parseEdges(src)
	if err != nil {
		log.Fatalf("bytetrie16gen: %v", err)
	}

	trie, err := bytetrie16.New(edges)
	if err != nil {
		log.Fatalf("bytetrie16gen: %v", err)
	}

	if err := emit(os.Stdout, pkgName, trie); err != nil {
		log.Fatalf("bytetrie16gen: %v", err)
	}
}

// usedLabels tracks, per parent, which labels have already been staged --
// a bitset.BitSet in place of a map[byte]bool, the same data structure
// bart's allot_tbl.go and overlaps.go reach for to track small fixed-range
// sets of byte values.
type usedLabels struct {
	byParent map[int]*bitset.BitSet
}

func newUsedLabels() *usedLabels {
	return &usedLabels{byParent: map[int]*bitset.BitSet{}}
}

func (u *usedLabels) markOrErr(parent int, label byte) error {
	bs, ok := u.byParent[parent]
	if !ok {
		bs = bitset.New(256)
		u.byParent[parent] = bs
	}
	if bs.Test(uint(label)) {
		return fmt.Errorf("duplicate sibling label %#x under parent %d", label, parent)
	}
	bs.Set(uint(label))
	return nil
}

func parseEdges(r io.Reader) ([]bytetrie16.Edge, error) {
	used := newUsedLabels()
	var edges []bytetrie16.Edge

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, fmt.Errorf("line %d: want 4 fields, got %d: %q", lineNo, len(fields), line)
		}

		number, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad number %q: %w", lineNo, fields[0], err)
		}

		parent := bytetrie16.NoParent
		if fields[1] != "root" {
			parent, err = strconv.Atoi(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: bad parent %q: %w", lineNo, fields[1], err)
			}
		}

		labelN, err := strconv.Atoi(fields[2])
		if err != nil || labelN < 0 || labelN > 255 {
			return nil, fmt.Errorf("line %d: bad label %q", lineNo, fields[2])
		}
		label := byte(labelN)

		if err := used.markOrErr(parent, label); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}

		var hasValue, hasBranch bool
		switch fields[3] {
		case "-":
		case "value":
			hasValue = true
		case "branch":
			hasBranch = true
		default:
			return nil, fmt.Errorf("line %d: bad flag %q, want -, value or branch", lineNo, fields[3])
		}

		edges = append(edges, bytetrie16.Edge{
			Number: number, Parent: parent, Label: label,
			HasValue: hasValue, HasBranch: hasBranch,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return edges, nil
}

func emit(w io.Writer, pkgName string, trie *bytetrie16.ByteTrie16) error {
	edgesArr := trie.Edges()
	nodesArr := trie.Nodes()

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// Code generated by bytetrie16gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(bw, "package %s\n\n", pkgName)
	fmt.Fprintf(bw, "var packedEdges = [%d]byte%s\n\n", bytetrie16.MaxEdges, formatBytes(edgesArr[:]))
	fmt.Fprintf(bw, "var packedNodes = [%d]byte%s\n", bytetrie16.MaxEdges, formatBytes(nodesArr[:]))
	return bw.Flush()
}

func formatBytes(bs []byte) string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, b := range bs {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "0x%02x", b)
	}
	sb.WriteString("}")
	return sb.String()
}
