// Package unionfind defines configuration options for constructing a
// UnionFind. Use DefaultOptions() to get a default setup.
package unionfind

// Options configures a UnionFind at construction time.
// Use DefaultOptions() to get a default setup (no pre-sizing).
//
// Fields:
//
//	Capacity int — expected number of distinct identifiers; pre-sizes the
//	               internal index and slot arrays to avoid rehash/regrow.
//
// See: unionfind.New, unionfind.FromSnapshot
// Complexity: O(1) to construct.
type Options struct {
	// Capacity is the expected number of distinct identifiers.
	// Zero or negative means no pre-sizing.
	Capacity int
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithCapacity returns an Option that pre-sizes internal storage for n
// identifiers. Purely a performance hint; the structure still grows on demand.
func WithCapacity(n int) Option {
	return func(opts *Options) {
		opts.Capacity = n
	}
}

// DefaultOptions returns Options initialized with no pre-sizing:
//
//	– Capacity = 0 (grow on demand).
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Capacity: 0,
	}
}
