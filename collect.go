package generators

// A DuplicateKeyError is returned by an accumulator to indicate that a key could not be added
// to a map because it already exists.
type DuplicateKeyError[T any, K comparable] struct {
	// Element is the generator's element that caused the error.
	Element T

	// Key is the key that was already in the map.
	Key K
}

// CollectSlice returns an accumulator that collects elements into a slice.
func CollectSlice[T any]() AccumulatorFunc[T, []T] {
	return func(elem T, _ uint64, acc []T) ([]T, error) {
		return append(acc, elem), nil
	}
}

// CollectMap returns an accumulator that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the map entry will be overwritten.
// A nil accumulator is replaced by a new map.
func CollectMap[T any, K comparable, V any](key MapperFunc[T, K], value MapperFunc[T, V]) AccumulatorFunc[T, map[K]V] {
	return func(elem T, index uint64, acc map[K]V) (map[K]V, error) {
		if acc == nil {
			acc = map[K]V{}
		}

		acc[key(elem, index)] = value(elem, index)
		return acc, nil
	}
}

// CollectMapNoDuplicateKeys returns an accumulator that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the accumulator returns a DuplicateKeyError.
// A nil accumulator is replaced by a new map.
func CollectMapNoDuplicateKeys[T any, K comparable, V any](key MapperFunc[T, K], value MapperFunc[T, V]) AccumulatorFunc[T, map[K]V] {
	return func(elem T, index uint64, acc map[K]V) (map[K]V, error) {
		if acc == nil {
			acc = map[K]V{}
		}

		key := key(elem, index)

		if _, ok := acc[key]; ok {
			return acc, &DuplicateKeyError[T, K]{
				Element: elem,
				Key:     key,
			}
		}

		acc[key] = value(elem, index)

		return acc, nil
	}
}

// CollectGroup returns an accumulator that collects elements into a group map.
// Elements will be grouped into slices according to key.
// A nil accumulator is replaced by a new map.
func CollectGroup[T any, K comparable, V any](key MapperFunc[T, K], value MapperFunc[T, V]) AccumulatorFunc[T, map[K][]V] {
	return func(elem T, index uint64, acc map[K][]V) (map[K][]V, error) {
		if acc == nil {
			acc = map[K][]V{}
		}

		key := key(elem, index)
		acc[key] = append(acc[key], value(elem, index))

		return acc, nil
	}
}

// CollectPartition returns an accumulator that collects elements into a partition map.
// Elements will be grouped into slices according to pred.
func CollectPartition[T any, V any](pred PredicateFunc[T], value MapperFunc[T, V]) AccumulatorFunc[T, map[bool][]V] {
	return CollectGroup(MapperFunc[T, bool](pred), value)
}

// Error implements error.
func (e *DuplicateKeyError[T, K]) Error() string {
	return "duplicate key"
}
