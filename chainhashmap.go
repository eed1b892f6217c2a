package chainhashmap

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/hashfunc"
	"github.com/gostonefire/chainhashmap/internal/chain"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/gostonefire/chainhashmap/internal/hash"
	"github.com/gostonefire/chainhashmap/internal/model"
)

// Chain - Interface for the ordered sequence of entries used as a bucket.
// Uniqueness of keys within a chain is not enforced by the chain, that is up to the ChainHashMap.
type Chain interface {
	Append(entry *model.Entry) error
	Size() int
	IsEmpty() bool
	First() *model.Entry
	Last() *model.Entry
	RemoveAt(index int) *model.Entry
	FindFirst(match func(entry *model.Entry) bool) *model.Entry
	ForEach(visit func(entry *model.Entry) bool) int
	Destroy()
	DestroyWith(destructor func(entry *model.Entry))
}

// HashMapStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of records stored
//   - Capacity is the number of buckets
//   - LoadFactor is Records / Capacity
//   - EmptyBuckets is the number of buckets holding no records
//   - LongestChain is the number of records in the most populated bucket
//   - BucketDistribution is the number of records stored in each bucket
type HashMapStat struct {
	Records            int64
	Capacity           int64
	LoadFactor         float64
	EmptyBuckets       int64
	LongestChain       int64
	BucketDistribution []int64
}

// ReorgConf - Is a struct used in the call to Reorg holding configuration for the rebuilt table.
//   - Capacity is the new number of buckets, 0 (zero) keeps the current and anything else lower than 3 gives 3
//   - HashAlgorithm is the new hash algorithm, nil keeps the current
type ReorgConf struct {
	Capacity      int64
	HashAlgorithm hashfunc.HashAlgorithm
}

// ChainHashMap - The main implementation struct, a separate chaining hash table mapping string keys to
// values owned by the caller. The hash map owns a private copy of every key but never inspects or
// releases the values.
//
// A ChainHashMap is not safe for concurrent use.
type ChainHashMap struct {
	buckets       []Chain
	capacity      int64
	count         int64
	hashAlgorithm hashfunc.HashAlgorithm
	newChain      func() (Chain, error)
}

// NewChainHashMap - Returns a new empty hash map.
//   - capacity is the initial number of buckets, if lower than 3 the hash map is created with 3 buckets
//   - hashAlgorithm is an optional entry to provide a custom hash algorithm following the hashfunc.HashAlgorithm interface, nil gives the internal sum of bytes algorithm.
//
// It returns:
//   - chainHashMap is a pointer to a ChainHashMap struct
//   - err is a normal go Error which should be nil if everything went ok
func NewChainHashMap(capacity int64, hashAlgorithm hashfunc.HashAlgorithm) (chainHashMap *ChainHashMap, err error) {
	return NewFromConf(Conf{InitialCapacity: capacity, HashAlgorithm: hashAlgorithm})
}

// NewFromConf - Returns a new empty hash map given a Conf struct, see Conf for the meaning of each field.
func NewFromConf(c Conf) (chainHashMap *ChainHashMap, err error) {
	maxChainLength := int(c.MaxChainLength)
	newChain := func() (Chain, error) { return chain.NewBoundedList(maxChainLength), nil }

	chainHashMap, err = newChainHashMap(c.InitialCapacity, c.HashAlgorithm, newChain)

	return
}

// newChainHashMap - Allocates the bucket array and one chain per bucket.
// If any chain fails to be created, those already created are destroyed and no hash map is returned.
func newChainHashMap(capacity int64, hashAlgorithm hashfunc.HashAlgorithm, newChain func() (Chain, error)) (chainHashMap *ChainHashMap, err error) {
	if capacity < conf.MinCapacity {
		capacity = conf.MinCapacity
	}
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewSumHashAlgorithm()
	}

	buckets := make([]Chain, capacity)
	for i := range buckets {
		buckets[i], err = newChain()
		if err != nil {
			for j := 0; j < i; j++ {
				buckets[j].Destroy()
			}
			err = fmt.Errorf("error while creating bucket %d: %w", i, err)
			return
		}
	}

	chainHashMap = &ChainHashMap{
		buckets:       buckets,
		capacity:      capacity,
		hashAlgorithm: hashAlgorithm,
		newChain:      newChain,
	}

	return
}

// Reorg - Rebuilds the hash map in place with a new capacity and/or hash algorithm. All records are re-inserted
// into a freshly built table which then replaces the current one, so existing pointers to the hash map stay valid.
// If the rebuild fails the hash map is left exactly as it was.
//   - reorgConf is an instance of the ReorgConf struct.
//
// It returns:
//   - err is of type InvalidArgument if the hash map is nil or destroyed, or of type ResizeFailed if the rebuild failed
func (C *ChainHashMap) Reorg(reorgConf ReorgConf) (err error) {
	if !C.valid() {
		err = InvalidArgument{msg: "reorg of nil or destroyed hash map"}
		return
	}

	capacity := C.capacity
	if reorgConf.Capacity != 0 {
		capacity = reorgConf.Capacity
	}
	hashAlgorithm := C.hashAlgorithm
	if reorgConf.HashAlgorithm != nil {
		hashAlgorithm = reorgConf.HashAlgorithm
	}

	err = C.rebuild(capacity, hashAlgorithm)

	return
}

// Stat - Walks through the entire set of buckets and produce a HashMapStat struct with information.
//   - includeDistribution set to true will include a slice of length Capacity with number of records per bucket, false will set HashMapStat.BucketDistribution to nil.
func (C *ChainHashMap) Stat(includeDistribution bool) (hashMapStat HashMapStat) {
	if !C.valid() {
		return
	}

	hashMapStat.Records = C.count
	hashMapStat.Capacity = C.capacity
	hashMapStat.LoadFactor = C.loadFactor()
	if includeDistribution {
		hashMapStat.BucketDistribution = make([]int64, C.capacity)
	}

	for i, bucket := range C.buckets {
		size := int64(bucket.Size())
		if size == 0 {
			hashMapStat.EmptyBuckets++
		}
		if size > hashMapStat.LongestChain {
			hashMapStat.LongestChain = size
		}
		if includeDistribution {
			hashMapStat.BucketDistribution[i] = size
		}
	}

	return
}
