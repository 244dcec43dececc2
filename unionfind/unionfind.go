// Package unionfind implements the keyed disjoint-set structure itself:
// a dense-slot union-find with full path compression and union by rank,
// addressed through arbitrary comparable identifiers.
package unionfind

// UnionFind is a disjoint-set data structure over identifiers of type T.
//
// Each distinct identifier is stored exactly once and mapped to a dense slot;
// the classical array-based DSU runs over slots, so equality and parent
// chasing never copy or re-hash identifiers after insertion.
//
// The zero value is not usable; construct with New or FromSnapshot.
// Not safe for concurrent use: Find compresses paths and therefore mutates,
// even though it is logically a query.
type UnionFind[T comparable] struct {
	// index maps an external identifier to its slot in ids/parent/rank.
	index map[T]int
	// ids holds the single stored copy of each identifier, in insertion order.
	ids []T
	// parent holds, per slot, the slot of its current best-known parent.
	// parent[i] == i marks a root (group leader).
	parent []int
	// rank holds, per slot, the rank of that slot's tree. For a root it is
	// the sum of ranks of all entries ever merged under it (an upper bound
	// on group size); for non-roots it trails the root's value and is not
	// load-bearing.
	rank []int
	// groups counts the current number of disjoint groups.
	groups int
}

// New returns an empty UnionFind configured by opts.
//
// Complexity: O(1), or O(Capacity) allocation when WithCapacity is given.
func New[T comparable](opts ...Option) *UnionFind[T] {
	// Start from defaults, then apply each functional option in order.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Negative capacity is treated as "no hint".
	capHint := cfg.Capacity
	if capHint < 0 {
		capHint = 0
	}

	return &UnionFind[T]{
		index:  make(map[T]int, capHint),
		ids:    make([]T, 0, capHint),
		parent: make([]int, 0, capHint),
		rank:   make([]int, 0, capHint),
	}
}

// Insert declares id as an element, creating a fresh singleton group with
// rank 1. Inserting an already-known identifier is a no-op, so Insert is
// idempotent and never fails.
//
// Complexity: O(1) amortized.
func (u *UnionFind[T]) Insert(id T) {
	// 1. Idempotence: a known identifier keeps its existing entry untouched.
	if _, ok := u.index[id]; ok {
		return
	}

	// 2. Assign the next dense slot and record the id as its own parent:
	//    a self-loop is the ROOT marker.
	slot := len(u.ids)
	u.index[id] = slot
	u.ids = append(u.ids, id)
	u.parent = append(u.parent, slot)
	u.rank = append(u.rank, 1)
	u.groups++
}

// Size returns the count of distinct identifiers ever inserted.
//
// Complexity: O(1), no side effects.
func (u *UnionFind[T]) Size() int {
	return len(u.ids)
}

// Groups returns the current number of disjoint groups.
//
// Complexity: O(1), no side effects.
func (u *UnionFind[T]) Groups() int {
	return u.groups
}

// Contains reports whether id was ever inserted.
//
// Complexity: O(1), no side effects.
func (u *UnionFind[T]) Contains(id T) bool {
	_, ok := u.index[id]
	return ok
}

// Elements returns all inserted identifiers in insertion order.
// The returned slice is a copy; mutating it does not affect the structure.
//
// Complexity: O(n) time and memory.
func (u *UnionFind[T]) Elements() []T {
	out := make([]T, len(u.ids))
	copy(out, u.ids)
	return out
}

// findSlot walks from slot i to its root, then repoints every visited slot
// directly at that root (full path compression). Visited slots also take on
// the root's rank so the whole chain reads consistently afterwards.
//
// Complexity: O(depth of the chain before compression); amortized O(log*n).
func (u *UnionFind[T]) findSlot(i int) int {
	// 1. Walk up until the self-loop that marks the root.
	root := i
	for u.parent[root] != root {
		root = u.parent[root]
	}

	// 2. Second pass: rewrite every slot on the walked path to point at the
	//    root directly, copying the root's rank along.
	for i != root {
		next := u.parent[i]
		u.parent[i] = root
		u.rank[i] = u.rank[root]
		i = next
	}

	return root
}

// Find returns the leader of id's group, or ErrNotFound if id was never
// inserted. As a side effect it fully compresses the path from id to the
// leader, so subsequent lookups on any identifier along that path are O(1).
//
// Complexity: O(log*n) amortized.
func (u *UnionFind[T]) Find(id T) (T, error) {
	slot, ok := u.index[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}

	return u.ids[u.findSlot(slot)], nil
}

// Union merges the groups containing x and y and returns the leader of the
// merged group. If either identifier is unknown, it returns ErrNotFound and
// mutates nothing — not even compression state (atomic no-op on failure).
//
// Merge policy: union by rank. The higher-rank leader wins; its rank becomes
// the sum of both ranks (uncapped). On equal ranks the leader resolved from
// x — the first argument — wins. The losing leader is repointed directly at
// the winner, so both former leaders answer Find in O(1) immediately after.
//
// Calling Union on identifiers already in the same group returns that
// group's leader and performs no structural change.
//
// Complexity: O(log*n) amortized.
func (u *UnionFind[T]) Union(x, y T) (T, error) {
	// 1. Resolve both slots before touching anything: failure must leave the
	//    structure byte-for-byte untouched.
	ix, okX := u.index[x]
	iy, okY := u.index[y]
	if !okX || !okY {
		var zero T
		return zero, ErrNotFound
	}

	// 2. Resolve both leaders with the compressing walk.
	xRoot := u.findSlot(ix)
	yRoot := u.findSlot(iy)

	// 3. Same leader: union is idempotent, nothing to merge.
	if xRoot == yRoot {
		return u.ids[xRoot], nil
	}

	// 4. Union by rank: swap so xRoot is the winner. The swap happens only on
	//    a strictly greater rank, which is exactly the first-argument-wins
	//    tie-break on equal ranks.
	if u.rank[yRoot] > u.rank[xRoot] {
		xRoot, yRoot = yRoot, xRoot
	}

	// 5. Attach the loser under the winner and sum the ranks. The loser keeps
	//    the combined rank too, so the freshly linked entry reads consistently
	//    without another Find.
	combined := u.rank[xRoot] + u.rank[yRoot]
	u.parent[yRoot] = xRoot
	u.rank[xRoot] = combined
	u.rank[yRoot] = combined
	u.groups--

	return u.ids[xRoot], nil
}

// Connected reports whether x and y currently share a leader.
// Returns ErrNotFound if either identifier was never inserted.
//
// Complexity: O(log*n) amortized (compresses both paths).
func (u *UnionFind[T]) Connected(x, y T) (bool, error) {
	ix, okX := u.index[x]
	iy, okY := u.index[y]
	if !okX || !okY {
		return false, ErrNotFound
	}

	return u.findSlot(ix) == u.findSlot(iy), nil
}

// Rank returns the rank of the leader of id's group: the sum of ranks of all
// entries merged into it, an upper bound on the group's size (exact when the
// group was built purely from singleton merges). Returns ErrNotFound if id
// was never inserted.
//
// Complexity: O(log*n) amortized.
func (u *UnionFind[T]) Rank(id T) (int, error) {
	slot, ok := u.index[id]
	if !ok {
		return 0, ErrNotFound
	}

	return u.rank[u.findSlot(slot)], nil
}
