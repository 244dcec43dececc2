// Package unionfind snapshot support: a straight export/import of the
// identifier → (parent, rank) mapping for persistence and debugging.
package unionfind

// Entry is one row of a Snapshot: an identifier, the identifier its entry
// currently points at (itself for a group leader), and its rank.
type Entry[T comparable] struct {
	ID     T   `json:"id"`
	Parent T   `json:"parent"`
	Rank   int `json:"rank"`
}

// Snapshot is a full dump of a UnionFind's internal mapping, in insertion
// order, with no semantic transformation: parent references are captured
// as-is, not compressed to leaders first. It marshals cleanly with
// encoding/json and feeds back into FromSnapshot.
type Snapshot[T comparable] struct {
	Entries []Entry[T] `json:"entries"`
}

// Snapshot returns a copy of the structure's current mapping in insertion
// order. The snapshot shares nothing with the structure; later operations on
// either do not affect the other.
//
// Complexity: O(n) time and memory.
func (u *UnionFind[T]) Snapshot() Snapshot[T] {
	entries := make([]Entry[T], len(u.ids))
	for i, id := range u.ids {
		entries[i] = Entry[T]{
			ID:     id,
			Parent: u.ids[u.parent[i]],
			Rank:   u.rank[i],
		}
	}

	return Snapshot[T]{Entries: entries}
}

// FromSnapshot rebuilds a UnionFind from a previously taken Snapshot (or any
// hand-built one describing a valid registry). Entries are restored in slice
// order, which becomes the insertion order of the result.
//
// Error Conditions:
//   - ErrBadSnapshot : duplicate ids, a Parent referencing an id absent from
//     the snapshot, a Rank below 1, or a parent chain that never reaches a
//     self-loop (a cycle).
//
// On error, nothing is returned: the snapshot is validated as a whole before
// any structure is handed back.
//
// Complexity: O(n) time and memory.
func FromSnapshot[T comparable](s Snapshot[T], opts ...Option) (*UnionFind[T], error) {
	// Pre-size for the snapshot itself unless the caller asked for more.
	u := New[T](append([]Option{WithCapacity(len(s.Entries))}, opts...)...)

	// 1. First pass: register every id and its rank, rejecting duplicates
	//    and non-positive ranks. Parents cannot be resolved yet because a
	//    parent may appear later in the snapshot than its child.
	for _, e := range s.Entries {
		if _, dup := u.index[e.ID]; dup {
			return nil, ErrBadSnapshot
		}
		if e.Rank < 1 {
			return nil, ErrBadSnapshot
		}
		slot := len(u.ids)
		u.index[e.ID] = slot
		u.ids = append(u.ids, e.ID)
		u.parent = append(u.parent, slot) // provisional self-loop
		u.rank = append(u.rank, e.Rank)
	}

	// 2. Second pass: resolve parent references to slots and count roots.
	roots := 0
	for i, e := range s.Entries {
		pSlot, ok := u.index[e.Parent]
		if !ok {
			return nil, ErrBadSnapshot
		}
		u.parent[i] = pSlot
		if pSlot == i {
			roots++
		}
	}
	u.groups = roots

	// 3. Third pass: every parent chain must terminate at a self-loop.
	//    state: 0 = unvisited, 1 = on the current walk, 2 = verified.
	state := make([]uint8, len(u.parent))
	for i := range u.parent {
		if state[i] != 0 {
			continue
		}
		j := i
		for state[j] == 0 && u.parent[j] != j {
			state[j] = 1
			j = u.parent[j]
		}
		if state[j] == 1 {
			// Walked back onto the current path: cycle.
			return nil, ErrBadSnapshot
		}
		// j is a root or already verified; mark the walked path verified.
		for k := i; state[k] == 1; k = u.parent[k] {
			state[k] = 2
		}
		state[j] = 2
	}

	return u, nil
}
