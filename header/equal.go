package header

import "reflect"

// EqualCollections reports whether x and y contain the same elements
// regardless of order. Duplicates must be matched by distinct elements.
// Nil and empty slices are equal.
func EqualCollections[T comparable](x, y []T) bool {
	return EqualCollectionsFunc(x, y, func(a, b T) bool { return a == b })
}

// EqualCollectionsFunc is like [EqualCollections] but uses eq to compare elements.
// If eq is nil, elements are compared with their Equal(T) bool or
// Equal(any) bool method, in that order, and with [reflect.DeepEqual]
// when they have neither.
//
// The cost is quadratic, which is fine for parameter lists of a few entries.
func EqualCollectionsFunc[T any](x, y []T, eq func(a, b T) bool) bool {
	if len(x) != len(y) {
		return false
	}
	if len(x) == 0 {
		return true
	}
	if eq == nil {
		eq = defaultEqual[T]
	}

	matched := make([]bool, len(y))
	for _, xv := range x {
		found := false
		for i, yv := range y {
			if !matched[i] && eq(xv, yv) {
				matched[i] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func defaultEqual[T any](a, b T) bool {
	if e, ok := any(a).(interface{ Equal(val T) bool }); ok {
		return e.Equal(b)
	}
	if e, ok := any(a).(interface{ Equal(val any) bool }); ok {
		return e.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}
