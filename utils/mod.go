package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

func FindIndexFunc[T any](slice []T, match func(T) bool) int {
	for i, v := range slice {
		if match(v) {
			return i
		}
	}
	return -1
}

// Filter returns the elements of slice that match, in order.
func Filter[T any](slice []T, match func(T) bool) []T {
	var out []T
	for _, v := range slice {
		if match(v) {
			out = append(out, v)
		}
	}
	return out
}
