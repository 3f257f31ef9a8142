package util

func InPlaceFilter[T any](s *[]T, p func(T) bool) {
	i := 0
	for _, e := range *s {
		if p(e) {
			(*s)[i] = e
			i++
		}
	}
	*s = (*s)[:i]
}

// FilterCopy is InPlaceFilter on a copy, leaving the input untouched
func FilterCopy[T any](s []T, p func(T) bool) []T {
	filtered := make([]T, len(s))
	copy(filtered, s)

	InPlaceFilter(&filtered, p)

	return filtered
}

func FindFirst[T any](s []T, p func(T) bool) (T, bool) {
	for _, e := range s {
		if p(e) {
			return e, true
		}
	}

	var empty T
	return empty, false
}
