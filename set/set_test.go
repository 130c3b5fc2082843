package set_test

import (
	"testing"

	"github.com/nickboucher/abom/hamlet"
	"github.com/nickboucher/abom/set"
)

func TestSetSortsAndDeduplicates(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Equal([]string{"a", "b", "c"}, set.Set([]string{"c", "a", "b", "a", "c"}))
	must.Equal([]int{1, 2, 3}, set.Set([]int{3, 1, 2, 2, 1}))
	must.Equal([]string{}, set.Set([]string{}))
}

func TestMembershipAndMember(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	members := set.Membership([]string{"x", "y"})
	must.True(members["x"])
	must.True(members["y"])
	wont.True(members["z"])

	must.True(set.Member([]string{"x", "y"}, "y"))
	wont.True(set.Member([]string{"x", "y"}, "z"))
}

func TestWithKeepsSetProperty(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	base := []string{"a", "c"}
	must.Equal([]string{"a", "b", "c"}, set.With(base, "b"))
	must.Equal([]string{"a", "c"}, set.With([]string{"a", "c"}, "c"))
}

func TestUnionMergesBothSides(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Equal([]int{1, 2, 3, 4}, set.Union([]int{1, 3}, []int{4, 2, 3}))
}

func TestKeysAreSorted(t *testing.T) {
	must, _ := hamlet.Specifications(t)

	must.Equal([]string{"bar", "foo"}, set.Keys(map[string]int{"foo": 1, "bar": 2}))
}
