// Package util provides common utility functions.
package util

import (
	"strings"
	"sync"
)

func EqFold[T1, T2 ~string](s1 T1, s2 T2) bool {
	return strings.EqualFold(string(s1), string(s2))
}

// IndexFold returns the index of the first instance of substr in s,
// comparing ASCII letters case-insensitively, or -1 if substr is not present.
// Non-ASCII bytes must match exactly.
func IndexFold(s, substr string) int {
	n := len(substr)
	for i := 0; i+n <= len(s); i++ {
		if equalFoldASCII(s[i:i+n], substr) {
			return i
		}
	}
	return -1
}

func ContainsFold(s, substr string) bool { return IndexFold(s, substr) >= 0 }

func equalFoldASCII(s1, s2 string) bool {
	for i := 0; i < len(s1); i++ {
		if lowerASCII(s1[i]) != lowerASCII(s2[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

var strBldrPool = &sync.Pool{
	New: func() any {
		sb := new(strings.Builder)
		sb.Grow(64)
		return sb
	},
}

func GetStringBuilder() *strings.Builder {
	return strBldrPool.Get().(*strings.Builder) //nolint:forcetypeassert
}

func FreeStringBuilder(sb *strings.Builder) {
	sb.Reset()
	strBldrPool.Put(sb)
}
