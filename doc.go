// Package hashunionfind is a disjoint-set (union-find) structure keyed by
// arbitrary comparable identifiers — strings, ints, structs — instead of
// dense integer indices.
//
// 🚀 What is hash-unionfind?
//
//	A small, pure-Go library that brings the classical array-based DSU to
//	opaque key types:
//		• Insert: declare elements incrementally, idempotently
//		• Union: merge groups by rank, deterministic tie-break
//		• Find: canonical leader lookup with full path compression
//		• Snapshot: straight JSON-friendly dump/restore of the mapping
//
// ✨ Why choose hash-unionfind?
//
//   - Generic — UnionFind[T comparable], no boxing, no string conversion
//   - Amortized near-constant operations — O(log*n) per Find/Union
//   - Rock-solid contracts — sentinel errors, atomic no-op on unknown keys
//   - Pure Go — no cgo, no hidden deps
//
// Everything lives in one subpackage:
//
//	unionfind/ — the UnionFind structure, options, errors and snapshots
//
// Quick ASCII example:
//
//	    a───b        d───e
//	        │
//	        c
//
//	Union("a","b"), Union("b","c"), Union("d","e") leaves two groups;
//	Find("a") == Find("c"), Find("a") != Find("d").
//
// Dive into unionfind's package docs for the full API and complexity notes.
//
//	go get github.com/eytans/hash-unionfind/unionfind
package hashunionfind
