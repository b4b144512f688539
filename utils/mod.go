package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Dedupe returns the distinct elements of slice in order of first occurrence.
func Dedupe[T comparable](slice []T) []T {
	out := make([]T, 0, len(slice))
	for _, v := range slice {
		if FindIndex(out, v) == -1 {
			out = append(out, v)
		}
	}
	return out
}
