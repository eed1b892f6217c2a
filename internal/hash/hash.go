package hash

import "github.com/gostonefire/chainhashmap/hashfunc"

// BucketNo - Returns the bucket for key given a table size, that is hashAlgorithm.HashFunc1(key) mod tableSize.
// The tableSize must be a positive number.
func BucketNo(hashAlgorithm hashfunc.HashAlgorithm, key string, tableSize int64) int64 {
	return int64(hashAlgorithm.HashFunc1(key) % uint64(tableSize))
}
