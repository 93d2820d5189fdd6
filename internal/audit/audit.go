// Package audit inspects an already formatted enumeration for repeated
// enumerator names and for values shared by several names.
//
// The block is located with a pattern that stops at the first closing
// brace, and entries are found with a plain "identifier = digits" pattern.
// Comments are not understood: a commented-out entry of the right shape
// counts like a live one.
package audit

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrBlockNotFound is returned when the text contains no block for the
// requested enumeration.
var ErrBlockNotFound = errors.New("enum block not found")

// Identifiers may contain any letter, mark or digit so names the rewriter
// has not sanitized yet are still counted.
var rePair = regexp.MustCompile(`([\p{L}\p{M}\p{N}_]+)\s*=\s*(\d+)`)

// Pair is one "identifier = value" occurrence inside the block.
type Pair struct {
	Identifier string `json:"identifier" yaml:"identifier"`
	Value      string `json:"value" yaml:"value"`
}

// ValueGroup lists the distinct identifiers that share one value, in order
// of first appearance.
type ValueGroup struct {
	Value string   `json:"value" yaml:"value"`
	Names []string `json:"names" yaml:"names"`
}

// Report is the outcome of one audit. It is built once and not modified
// afterwards.
type Report struct {
	Enum            string       `json:"enum" yaml:"enum"`
	Pairs           int          `json:"pairs" yaml:"pairs"`
	DuplicateNames  []string     `json:"duplicate_names" yaml:"duplicate_names"`
	DuplicateValues []ValueGroup `json:"duplicate_values" yaml:"duplicate_values"`
}

// Clean reports whether no duplicates were found.
func (r *Report) Clean() bool {
	return len(r.DuplicateNames) == 0 && len(r.DuplicateValues) == 0
}

// ValueMap returns DuplicateValues keyed by value.
func (r *Report) ValueMap() map[string][]string {
	m := make(map[string][]string, len(r.DuplicateValues))
	for _, g := range r.DuplicateValues {
		m[g.Value] = g.Names
	}
	return m
}

// Auditor audits one named enumeration.
type Auditor struct {
	EnumName string
	block    *regexp.Regexp
}

// NewAuditor compiles the block pattern for enumName. Both the plain and
// the class-qualified form are accepted, with an optional underlying type.
func NewAuditor(enumName string) *Auditor {
	pattern := `enum\s+(?:class\s+)?` + regexp.QuoteMeta(enumName) + `\b(?:\s*:\s*[\w:]+(?:\s+[\w:]+)*)?\s*\{([^}]+)\}`
	return &Auditor{EnumName: enumName, block: regexp.MustCompile(pattern)}
}

// Audit locates the first block in text and reports its duplicates.
func (a *Auditor) Audit(text string) (*Report, error) {
	m := a.block.FindStringSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("%w: %s", ErrBlockNotFound, a.EnumName)
	}
	pairs := ExtractPairs(m[1])
	report := FindDuplicates(pairs)
	report.Enum = a.EnumName
	return report, nil
}

// ExtractPairs returns every "identifier = digits" match in body, in order.
func ExtractPairs(body string) []Pair {
	matches := rePair.FindAllStringSubmatch(body, -1)
	pairs := make([]Pair, 0, len(matches))
	for _, m := range matches {
		pairs = append(pairs, Pair{Identifier: m[1], Value: m[2]})
	}
	return pairs
}

// FindDuplicates tabulates pairs. Names seen more than once are listed once
// each in first-seen order; values attached to two or more distinct names
// are grouped in order of the value's first appearance.
func FindDuplicates(pairs []Pair) *Report {
	nameCount := make(map[string]int)
	var nameOrder []string

	valueNames := make(map[string][]string)
	var valueOrder []string

	for _, p := range pairs {
		if nameCount[p.Identifier] == 0 {
			nameOrder = append(nameOrder, p.Identifier)
		}
		nameCount[p.Identifier]++

		names, seen := valueNames[p.Value]
		if !seen {
			valueOrder = append(valueOrder, p.Value)
		}
		if !contains(names, p.Identifier) {
			valueNames[p.Value] = append(names, p.Identifier)
		}
	}

	r := &Report{
		Pairs:           len(pairs),
		DuplicateNames:  []string{},
		DuplicateValues: []ValueGroup{},
	}
	for _, n := range nameOrder {
		if nameCount[n] > 1 {
			r.DuplicateNames = append(r.DuplicateNames, n)
		}
	}
	for _, v := range valueOrder {
		if names := valueNames[v]; len(names) > 1 {
			r.DuplicateValues = append(r.DuplicateValues, ValueGroup{Value: v, Names: names})
		}
	}
	return r
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
