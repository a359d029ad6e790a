package internal

// FindOrDefault returns the value stored under key, or def when the key is absent.
func FindOrDefault[K comparable, V any](m map[K]V, key K, def V) V {
	if val, ok := m[key]; ok {
		return val
	}
	return def
}
