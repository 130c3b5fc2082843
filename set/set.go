package set

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Set returns the unique entries of incoming in sorted order.
func Set[Entry constraints.Ordered](incoming []Entry) []Entry {
	return Keys(Membership(incoming))
}

func Membership[Entry comparable](incoming []Entry) map[Entry]bool {
	result := make(map[Entry]bool, len(incoming))
	for _, entry := range incoming {
		result[entry] = true
	}
	return result
}

func Keys[Key constraints.Ordered, Value any](incoming map[Key]Value) []Key {
	result := make([]Key, 0, len(incoming))
	for key := range incoming {
		result = append(result, key)
	}
	return Sort(result)
}

func Values[Key comparable, Value any](incoming map[Key]Value) []Value {
	result := make([]Value, 0, len(incoming))
	for _, value := range incoming {
		result = append(result, value)
	}
	return result
}

func Sort[Entry constraints.Ordered](set []Entry) []Entry {
	sort.Slice(set, func(left, right int) bool {
		return set[left] < set[right]
	})
	return set
}

func Member[Entry comparable](set []Entry, candidate Entry) bool {
	for _, entry := range set {
		if entry == candidate {
			return true
		}
	}
	return false
}

func With[Entry constraints.Ordered](set []Entry, candidate Entry) []Entry {
	if Member(set, candidate) {
		return set
	}
	return Sort(append(set, candidate))
}

func Union[Entry constraints.Ordered](left, right []Entry) []Entry {
	return Set(append(left, right...))
}
