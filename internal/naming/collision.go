package naming

import "strconv"

// DuplicateSuffix is inserted between a repeated base name and its
// occurrence number.
const DuplicateSuffix = "_duplicate"

// CollisionTable tracks how often each base name has been handed out during
// one rewrite pass and disambiguates repeats. The first occurrence keeps
// its base name; the Nth (N >= 2) becomes base + "_duplicateN".
//
// A table is scoped to a single pass and is not safe for concurrent use.
type CollisionTable struct {
	counts  map[string]int // base name → occurrences so far
	renamed int
}

// NewCollisionTable creates an empty table.
func NewCollisionTable() *CollisionTable {
	return &CollisionTable{counts: make(map[string]int)}
}

// Resolve registers one occurrence of base and returns the name to emit.
func (ct *CollisionTable) Resolve(base string) string {
	n := ct.counts[base] + 1
	ct.counts[base] = n
	if n == 1 {
		return base
	}
	ct.renamed++
	return base + DuplicateSuffix + strconv.Itoa(n)
}

// Count returns how many times base has been resolved so far.
func (ct *CollisionTable) Count(base string) int {
	return ct.counts[base]
}

// Renamed returns how many names received a duplicate suffix.
func (ct *CollisionTable) Renamed() int {
	return ct.renamed
}

// Len returns the number of distinct base names seen.
func (ct *CollisionTable) Len() int {
	return len(ct.counts)
}
