package chainhashmap

import (
	"github.com/gostonefire/chainhashmap/hashfunc"
	"github.com/gostonefire/chainhashmap/internal/hash"
	"github.com/gostonefire/chainhashmap/internal/model"
	"strings"
)

// valid - Returns true if the hash map is neither nil nor destroyed
func (C *ChainHashMap) valid() bool {
	return C != nil && C.buckets != nil
}

// loadFactor - Returns number of records per bucket
func (C *ChainHashMap) loadFactor() float64 {
	return float64(C.count) / float64(C.capacity)
}

// bucketOf - Returns the bucket that key belongs to given the current capacity
func (C *ChainHashMap) bucketOf(key string) Chain {
	return C.buckets[hash.BucketNo(C.hashAlgorithm, key, C.capacity)]
}

// matchKey - Returns a predicate matching entries with the given key
func matchKey(key string) func(entry *model.Entry) bool {
	return func(entry *model.Entry) bool { return entry.Key == key }
}

// insert - Adds a record without checking the load factor.
//   - findDuplicate set to true replaces the value of an existing record with the same key, false always appends a new record
//
// It returns:
//   - previous is the replaced value, nil if a new record was added
//   - err is the error from the bucket if the record could not be appended, the hash map is then unchanged
func (C *ChainHashMap) insert(key string, value any, findDuplicate bool) (previous any, err error) {
	bucket := C.bucketOf(key)

	if findDuplicate {
		if entry := bucket.FindFirst(matchKey(key)); entry != nil {
			previous = entry.Value
			entry.Value = value
			return
		}
	}

	err = bucket.Append(&model.Entry{Key: strings.Clone(key), Value: value})
	if err != nil {
		return
	}
	C.count++

	return
}

// forEachEntry - Walks entries bucket by bucket until visit returns false.
//
// It returns:
//   - visited is the number of times visit was called
func (C *ChainHashMap) forEachEntry(visit func(entry *model.Entry) bool) (visited int64) {
	var stopped bool
	for _, bucket := range C.buckets {
		visited += int64(bucket.ForEach(func(entry *model.Entry) bool {
			if !visit(entry) {
				stopped = true
				return false
			}
			return true
		}))
		if stopped {
			return
		}
	}

	return
}

// rebuild - Builds a parallel table with the given capacity and hash algorithm, moves every record into it and
// then swaps storage with it. On any failure the parallel table is discarded and the hash map is untouched.
func (C *ChainHashMap) rebuild(capacity int64, hashAlgorithm hashfunc.HashAlgorithm) (err error) {
	tmp, err := newChainHashMap(capacity, hashAlgorithm, C.newChain)
	if err != nil {
		err = ResizeFailed{msg: "error while creating new table", err: err}
		return
	}

	var insertErr error
	C.forEachEntry(func(entry *model.Entry) bool {
		_, insertErr = tmp.insert(entry.Key, entry.Value, false)
		return insertErr == nil
	})
	if tmp.count < C.count {
		tmp.Destroy()
		err = ResizeFailed{msg: "error while moving records to new table", err: insertErr}
		return
	}

	C.swap(tmp)
	tmp.Destroy()

	return
}

// swap - Exchanges storage with other, the identities of the two hash maps are kept.
// Counts are equal at this point so they are left as they are.
func (C *ChainHashMap) swap(other *ChainHashMap) {
	C.buckets, other.buckets = other.buckets, C.buckets
	C.capacity, other.capacity = other.capacity, C.capacity
	C.hashAlgorithm, other.hashAlgorithm = other.hashAlgorithm, C.hashAlgorithm
}
