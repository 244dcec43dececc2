// File: unionfind/example_test.go
package unionfind_test

import (
	"fmt"

	"github.com/eytans/hash-unionfind/unionfind"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Union & Find
////////////////////////////////////////////////////////////////////////////////

// ExampleUnionFind demonstrates the basic lifecycle: insert identifiers,
// merge their groups, and query leaders.
// Scenario:
//
//   - Five string ids: a..e
//   - Union("a","b"), Union("b","c") → one group {a,b,c}
//   - Union("d","e")                 → another group {d,e}
//   - A final Union("a","d") joins everything under a single leader.
//
// Complexity: O(log*n) amortized per Union/Find.
func ExampleUnionFind() {
	uf := unionfind.New[string]()
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		uf.Insert(id)
	}

	uf.Union("a", "b")
	uf.Union("b", "c")
	uf.Union("d", "e")

	la, _ := uf.Find("a")
	lc, _ := uf.Find("c")
	ld, _ := uf.Find("d")
	fmt.Println("find(a) == find(c):", la == lc)
	fmt.Println("find(a) == find(d):", la == ld)
	fmt.Println("groups:", uf.Groups())

	uf.Union("a", "d")
	le, _ := uf.Find("e")
	fmt.Println("leader of e after merge:", le)

	// Output:
	// find(a) == find(c): true
	// find(a) == find(d): false
	// groups: 2
	// leader of e after merge: a
}

////////////////////////////////////////////////////////////////////////////////
// Example: unknown identifiers
////////////////////////////////////////////////////////////////////////////////

// ExampleUnionFind_Union_notFound demonstrates the not-found contract:
// a union touching a never-inserted identifier fails with ErrNotFound and
// mutates nothing.
func ExampleUnionFind_Union_notFound() {
	uf := unionfind.New[string]()
	uf.Insert("a")

	_, err := uf.Union("a", "x")
	fmt.Println("error:", err)
	fmt.Println("size still:", uf.Size())

	// Output:
	// error: unionfind: identifier not found
	// size still: 1
}

////////////////////////////////////////////////////////////////////////////////
// Example: Snapshot round trip
////////////////////////////////////////////////////////////////////////////////

// ExampleUnionFind_Snapshot demonstrates dumping the internal mapping and
// rebuilding an equivalent structure from it.
func ExampleUnionFind_Snapshot() {
	uf := unionfind.New[int](unionfind.WithCapacity(4))
	for i := 1; i <= 4; i++ {
		uf.Insert(i)
	}
	uf.Union(1, 2)
	uf.Union(3, 4)

	restored, _ := unionfind.FromSnapshot(uf.Snapshot())
	leader, _ := restored.Find(2)
	fmt.Println("restored leader of 2:", leader)
	fmt.Println("restored groups:", restored.Groups())

	// Output:
	// restored leader of 2: 1
	// restored groups: 2
}
