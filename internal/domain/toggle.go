package domain

// Toggle flips membership of id in the given list: present ids are
// removed (preserving the order of the rest), absent ids are appended.
// Comparison is by value. The input slice is never mutated.
//
// Applying Toggle twice with the same id returns a list equal to the
// original - it is a toggle, not a set-add.
func Toggle(list []string, id string) []string {
	for i, v := range list {
		if v == id {
			out := make([]string, 0, len(list)-1)
			out = append(out, list[:i]...)
			out = append(out, list[i+1:]...)

			return out
		}
	}

	out := make([]string, 0, len(list)+1)
	out = append(out, list...)
	out = append(out, id)

	return out
}

// Contains reports whether id is present in list, compared by value.
func Contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}

	return false
}
