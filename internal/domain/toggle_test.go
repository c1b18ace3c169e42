package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle_AddWhenAbsent(t *testing.T) {
	got := Toggle([]string{}, "u1")

	assert.Equal(t, []string{"u1"}, got)
	assert.Len(t, got, 1)
}

func TestToggle_RemoveWhenPresent(t *testing.T) {
	got := Toggle([]string{"u1"}, "u1")

	assert.Empty(t, got)
}

func TestToggle_TwiceReturnsOriginal(t *testing.T) {
	tests := []struct {
		name string
		list []string
		id   string
	}{
		{name: "empty list", list: []string{}, id: "u1"},
		{name: "id absent", list: []string{"a", "b"}, id: "u1"},
		{name: "id present in middle", list: []string{"a", "u1", "b"}, id: "u1"},
		{name: "id present at end", list: []string{"a", "b", "u1"}, id: "u1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := Toggle(tt.list, tt.id)
			twice := Toggle(once, tt.id)

			assert.Equal(t, tt.list, twice, "two toggles must restore the original list")
		})
	}
}

func TestToggle_MembershipFlips(t *testing.T) {
	tests := []struct {
		name string
		list []string
		id   string
	}{
		{name: "absent becomes present", list: []string{"a", "b"}, id: "c"},
		{name: "present becomes absent", list: []string{"a", "b"}, id: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := Contains(tt.list, tt.id)
			after := Contains(Toggle(tt.list, tt.id), tt.id)

			assert.NotEqual(t, before, after)
		})
	}
}

func TestToggle_RemovePreservesOrder(t *testing.T) {
	got := Toggle([]string{"a", "u1", "b", "c"}, "u1")

	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestToggle_DoesNotMutateInput(t *testing.T) {
	in := []string{"a", "b"}
	_ = Toggle(in, "c")
	_ = Toggle(in, "a")

	assert.Equal(t, []string{"a", "b"}, in)
}

func TestToggle_ComparesByValue(t *testing.T) {
	// Distinct string instances with equal content count as the same id.
	id := "u" + "1"
	got := Toggle([]string{"u1"}, id)

	assert.Empty(t, got)
}
