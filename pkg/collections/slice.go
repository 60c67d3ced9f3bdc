package collections

// SliceRemoveIndex returns a copy of slice without the element at i.
func SliceRemoveIndex[T any](slice []T, i int) []T {
	result := make([]T, 0, len(slice)-1)
	result = append(result, slice[:i]...)
	result = append(result, slice[i+1:]...)
	return result
}

// SliceRemoveFunc returns a copy of slice without the elements for which
// remove returns true, and the number of elements removed.
func SliceRemoveFunc[T any](slice []T, remove func(T) bool) ([]T, int) {
	result := make([]T, 0, len(slice))
	for _, v := range slice {
		if remove(v) {
			continue
		}
		result = append(result, v)
	}
	return result, len(slice) - len(result)
}

// SliceIndex returns the position of the first element identical to v, or
// -1.
func SliceIndex[T comparable](slice []T, v T) int {
	for i, e := range slice {
		if e == v {
			return i
		}
	}
	return -1
}
