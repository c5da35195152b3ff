package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Concat returns a newly allocated slice holding the given slices in order.
// The result never shares a backing array with its inputs.
func Concat[T any](slices ...[]T) []T {
	n := 0
	for _, s := range slices {
		n += len(s)
	}
	out := make([]T, 0, n)
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}

// RemoveAt returns a new slice without the element at index i.
func RemoveAt[T any](slice []T, i int) []T {
	return Concat(slice[:i], slice[i+1:])
}
