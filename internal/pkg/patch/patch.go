package patch

// Coalesce dereferences an optional input, falling back when it was not supplied.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
