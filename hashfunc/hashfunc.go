package hashfunc

// HashAlgorithm - Interface that permits an implementation using the ChainHashMap to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm interface {
	// HashFunc1 - Given key it generates a hash value.
	// The bucket is selected as hash value modulo the current table size, so the function must not depend on
	// the table size and must always return the same value for the same key. Keys that are equal must give
	// equal hash values or they will not be found again.
	HashFunc1(key string) uint64
}
