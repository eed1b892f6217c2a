package hash

import "github.com/cespare/xxhash/v2"

// XXHashAlgorithm - Bucket selection using the 64-bit xxHash of the key
type XXHashAlgorithm struct{}

// NewXXHashAlgorithm - Returns a pointer to a new XXHashAlgorithm instance
func NewXXHashAlgorithm() *XXHashAlgorithm {
	return &XXHashAlgorithm{}
}

// HashFunc1 - Given key it returns its xxHash digest
func (X *XXHashAlgorithm) HashFunc1(key string) uint64 {
	return xxhash.Sum64String(key)
}
