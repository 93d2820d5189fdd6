// Package naming turns raw enumerator names into safe, unique C++
// identifiers.
//
// Two independent pieces live here:
//   - [Sanitize] maps a raw name onto a lowercase identifier base. It is
//     pure and knows nothing about other names in the run.
//   - [CollisionTable] tracks every base name handed out during one rewrite
//     pass and appends "_duplicateN" to repeats. A table belongs to exactly
//     one pass; callers create a fresh one per input.
package naming
