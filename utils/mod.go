package utils

// FindIndex returns the index of the first item in slice, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// AppendUnique appends item unless slice already holds it.
func AppendUnique[T comparable](slice []T, item T) []T {
	if FindIndex(slice, item) >= 0 {
		return slice
	}
	return append(slice, item)
}
