// Package bounce resolves a segment of an image sequence and plans its
// mirrored (forward-then-reverse) duplication on disk.
//
// Split along these boundaries:
//   - resolve.go: Selection → Segment resolution (index pair, name pair,
//     or full range) with range validation.
//   - plan.go: mirrored ordering (reverse of the segment minus the pivot)
//     and the first-free-contiguous-block suffix search that keeps repeat
//     runs from overwriting earlier output.
//   - copy.go: the symlink-free copy primitive (content, permissions,
//     mtimes) used to materialize the plan.
package bounce
