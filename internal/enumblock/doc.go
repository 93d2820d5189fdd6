// Package enumblock rewrites a raw enumeration block into formatted
// enumerator declarations.
//
// Input is processed line by line. Lines outside the target block are
// copied byte for byte. Inside the block, every line that looks like
// "name number" becomes "    name = number," with a sanitized, unique
// identifier; every other line is commented out rather than dropped.
//
// Block detection is substring based and entry detection is a single
// line-oriented pattern; this is not a C++ parser.
package enumblock
