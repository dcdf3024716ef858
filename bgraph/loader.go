package bgraph

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// LoadOptions configures Load. The zero value assumes the source already
// uses contiguous 0..V0 vertex ids, per spec §6's "optional" remap step.
type LoadOptions struct {
	// Remap, when true, compacts whatever vertex ids appear in the input
	// into a contiguous 0..V0 range, assigned in ascending order of
	// original id (so the mapping is deterministic for a fixed input).
	Remap bool
}

// LoadOption mutates a LoadOptions, following the teacher pack's
// functional-options convention (lvlath/core.GraphOption).
type LoadOption func(*LoadOptions)

// WithRemap enables vertex-id compaction (spec §6, loader step d).
func WithRemap() LoadOption {
	return func(o *LoadOptions) { o.Remap = true }
}

// Load reads a text stream of whitespace-separated "u v w" triples, one
// edge per line, and builds a Graph. It rejects self-loops, deduplicates
// edges (keeping the first occurrence's weight), and symmetrizes every
// accepted edge into both directed records, per spec §6.
//
// Blank lines and lines starting with '#' are ignored, matching the
// common convention in the corpus's plain-text graph fixtures.
func Load(r io.Reader, opts ...LoadOption) (*Graph, error) {
	var cfg LoadOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	type rawEdge struct {
		u, v   uint32
		weight float32
	}

	var raw []rawEdge
	maxID := uint32(0)
	seen := make(map[[2]uint32]struct{})

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("bgraph: line %d: %w", lineNo, ErrInvalidLine)
		}
		u64, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bgraph: line %d: from id: %w", lineNo, ErrInvalidLine)
		}
		v64, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bgraph: line %d: to id: %w", lineNo, ErrInvalidLine)
		}
		w64, err := strconv.ParseFloat(fields[2], 32)
		if err != nil {
			return nil, fmt.Errorf("bgraph: line %d: weight: %w", lineNo, ErrInvalidLine)
		}
		u, v := uint32(u64), uint32(v64)
		if u == v {
			return nil, fmt.Errorf("bgraph: line %d: (%d,%d): %w", lineNo, u, v, ErrSelfLoop)
		}

		key := [2]uint32{u, v}
		if u > v {
			key = [2]uint32{v, u}
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		raw = append(raw, rawEdge{u: u, v: v, weight: float32(w64)})
		if u > maxID {
			maxID = u
		}
		if v > maxID {
			maxID = v
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("bgraph: reading input: %w", err)
	}

	var vertexCount uint32
	idOf := func(id uint32) uint32 { return id }

	if cfg.Remap {
		present := make(map[uint32]struct{})
		for _, e := range raw {
			present[e.u] = struct{}{}
			present[e.v] = struct{}{}
		}
		ordered := make([]uint32, 0, len(present))
		for id := range present {
			ordered = append(ordered, id)
		}
		sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })
		remap := make(map[uint32]uint32, len(ordered))
		for i, id := range ordered {
			remap[id] = uint32(i)
		}
		idOf = func(id uint32) uint32 { return remap[id] }
		vertexCount = uint32(len(ordered))
	} else {
		vertexCount = maxID + 1
		if len(raw) == 0 {
			vertexCount = 0
		}
	}

	edges := make([]Edge, 0, 2*len(raw))
	for _, e := range raw {
		u, v := idOf(e.u), idOf(e.v)
		edges = append(edges, Edge{From: u, To: v, Weight: e.weight})
		edges = append(edges, Edge{From: v, To: u, Weight: e.weight})
	}

	return New(vertexCount, edges)
}
