package model

import "sort"

// Offsets is a set of zero-based row positions within one list.
// Min, Max and Contains expect unique values in ascending order, which is
// what NewOffsets builds; normalize literals with NewOffsets(o...).
type Offsets []int

// NewOffsets builds an offset set from arbitrary positions, dropping duplicates
func NewOffsets(positions ...int) Offsets {
	seen := make(map[int]struct{}, len(positions))
	out := make(Offsets, 0, len(positions))
	for _, p := range positions {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// Len returns the number of positions in the set
func (o Offsets) Len() int {
	return len(o)
}

// Contains reports whether pos is part of the set
func (o Offsets) Contains(pos int) bool {
	i := sort.SearchInts(o, pos)
	return i < len(o) && o[i] == pos
}

// Min returns the smallest position, or -1 for an empty set
func (o Offsets) Min() int {
	if len(o) == 0 {
		return -1
	}
	return o[0]
}

// Max returns the largest position, or -1 for an empty set
func (o Offsets) Max() int {
	if len(o) == 0 {
		return -1
	}
	return o[len(o)-1]
}
