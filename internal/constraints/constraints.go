// Package constraints holds type sets shared by generic helpers.
package constraints

// Byteseq is header text held either as a string or as a byte slice.
type Byteseq interface {
	~string | ~[]byte
}

// FixedInt is the set of fixed-width integers produced by the number parsers.
type FixedInt interface {
	~int32 | ~int64
}
