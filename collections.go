package collections

// Map is an interface for the keyed containers in this module
type Map[K comparable, V any] interface {
	Len() int
	IsEmpty() bool
	Contains(key K) bool
	Get(key K) (V, bool)
	Delete(key K)
	Clear()
	Range(iter func(key K, value V) bool)
}
