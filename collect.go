package lazystreams

// CollectSlice returns an accumulator that collects elements into a slice.
func CollectSlice[T any]() AccumulatorFunc[T, []T] {
	return func(acc []T, elem T) []T {
		return append(acc, elem)
	}
}

// CollectSet returns an accumulator that collects elements into a set.
func CollectSet[T comparable]() AccumulatorFunc[T, map[T]struct{}] {
	return func(acc map[T]struct{}, elem T) map[T]struct{} {
		acc[elem] = struct{}{}
		return acc
	}
}

// CollectMap returns an accumulator that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the map entry will be overwritten.
func CollectMap[T any, K comparable, V any](key MapperFunc[T, K], value MapperFunc[T, V]) AccumulatorFunc[T, map[K]V] {
	requireFunc(key == nil, "key mapper")
	requireFunc(value == nil, "value mapper")

	return func(acc map[K]V, elem T) map[K]V {
		acc[key(elem)] = value(elem)
		return acc
	}
}

// CollectGroup returns an accumulator that collects elements into a group map.
// Elements will be grouped into slices according to key.
func CollectGroup[T any, K comparable, V any](key MapperFunc[T, K], value MapperFunc[T, V]) AccumulatorFunc[T, map[K][]V] {
	requireFunc(key == nil, "key mapper")
	requireFunc(value == nil, "value mapper")

	return func(acc map[K][]V, elem T) map[K][]V {
		k := key(elem)
		acc[k] = append(acc[k], value(elem))

		return acc
	}
}

// ToSlice returns the elements produced by s, in order.
func (s Stream[T]) ToSlice() ([]T, error) {
	return Reduce(s, []T{}, CollectSlice[T]())
}

// ToSet returns the set of elements produced by s.
func ToSet[T comparable](s Stream[T]) (map[T]struct{}, error) {
	return Reduce(s, map[T]struct{}{}, CollectSet[T]())
}

// ToMap returns a map of the elements produced by s, keyed by key.
// If several elements have the same key, the last one wins.
func ToMap[T any, K comparable](s Stream[T], key MapperFunc[T, K]) (map[K]T, error) {
	return ToMapBy(s, key, Identity[T]())
}

// ToMapBy returns a map of the elements produced by s, mapped using key and value, respectively.
// If several elements have the same key, the value of the last one wins.
func ToMapBy[T any, K comparable, V any](s Stream[T], key MapperFunc[T, K], value MapperFunc[T, V]) (map[K]V, error) {
	return Reduce(s, map[K]V{}, CollectMap(key, value))
}
