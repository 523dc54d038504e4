package memory

import "sort"

// sortByID ordena in-place cualquier slice de entidades por su ID.
func sortByID[T any](items []T, id func(T) int64) {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
}
