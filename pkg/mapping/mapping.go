package mapping

// MapViewModels converts each entity with mapFunc.
func MapViewModels[T any, V any](entities []T, mapFunc func(T) V) []V {
	viewModels := make([]V, 0, len(entities))
	for _, entity := range entities {
		viewModels = append(viewModels, mapFunc(entity))
	}
	return viewModels
}

// Pointer returns a pointer to a copy of v.
func Pointer[T any](v T) *T {
	return &v
}
