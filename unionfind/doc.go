// Package unionfind provides a disjoint-set (union-find) data structure keyed
// by arbitrary comparable identifiers, with full path compression and union
// by rank.
//
// What & Why
//
//   - What is a disjoint-set?
//     A partition of a set of elements into non-overlapping groups, supporting
//     two operations: Find (which group does this element belong to?) and
//     Union (merge the groups of two elements). Each group is named by a
//     single canonical element, its leader.
//
//   - Why keyed by T instead of by index?
//     The classical DSU works over dense 0..n-1 indices and forces callers to
//     maintain their own id↔index translation. UnionFind[T] owns that
//     translation: callers speak in their domain identifiers (vertex names,
//     file hashes, cluster ids) and the structure runs the array algorithm
//     over dense slots internally.
//
// Structure
//
//   - Each inserted identifier is stored exactly once, in insertion order,
//     and assigned a dense slot. parent and rank arrays over slots hold the
//     DSU state; parent[i] == i marks a group leader (root).
//   - Find walks parent links to the root and then repoints every visited
//     entry directly at it (full path compression), so repeated lookups on
//     the same chain are O(1).
//   - Union resolves both leaders via the same compressing walk, then
//     attaches the lower-rank leader under the higher-rank one. The winner's
//     rank becomes the sum of both ranks (an upper bound on group size).
//     On equal ranks the leader of the first argument wins — a documented,
//     deterministic tie-break.
//
// Complexity
//
//   - Insert/Size/Groups/Contains: O(1) amortized.
//   - Find/Union/Connected/Rank:   O(log*n) amortized (iterated logarithm);
//     a single call is O(depth of the uncompressed chain) worst case.
//   - Elements/Snapshot:           O(n).
//
// Errors
//
//   - ErrNotFound: Find/Union/Connected/Rank on an identifier that was never
//     inserted. Union fails atomically — neither side is mutated.
//   - ErrBadSnapshot: FromSnapshot input with duplicate ids, a parent
//     referencing an unknown id, or a rank below 1.
//
// Concurrency
//
//	UnionFind is NOT safe for concurrent use. Find mutates compression state
//	even though it is logically a query, so even concurrent readers race.
//	Guard the structure externally if it is shared across goroutines.
//
// For usage, see example_test.go in this package.
package unionfind
