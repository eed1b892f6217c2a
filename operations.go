package chainhashmap

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/internal/conf"
	"github.com/gostonefire/chainhashmap/internal/model"
)

// Insert - Adds a record or replaces the value of an existing record with the same key.
// If the load factor is above 0.70 before the call the capacity is first doubled. Should that fail the call
// fails and the hash map is left exactly as it was.
//   - key is the identifier of the record, the hash map stores its own copy of it
//   - value is stored as is and handed back unchanged by Get, Remove and on replacement
//
// It returns:
//   - previous is the value that was replaced, nil if the key was new
//   - err is of type InvalidArgument if the hash map is nil or destroyed, of type ResizeFailed if growing failed or a standard error if the record could not be added
func (C *ChainHashMap) Insert(key string, value any) (previous any, err error) {
	if !C.valid() {
		err = InvalidArgument{msg: "insert into nil or destroyed hash map"}
		return
	}

	if C.loadFactor() > conf.MaxLoadFactor {
		err = C.rebuild(C.capacity*conf.GrowthFactor, C.hashAlgorithm)
		if err != nil {
			return
		}
	}

	previous, err = C.insert(key, value, true)
	if err != nil {
		err = fmt.Errorf("error while adding record to bucket: %w", err)
	}

	return
}

// Get - Gets the value of the record that corresponds to the given key.
//
// It returns:
//   - value is the stored value, nil if not found
//   - found is true if a record with the key exists, false if not or if the hash map is nil or destroyed
func (C *ChainHashMap) Get(key string) (value any, found bool) {
	if !C.valid() {
		return
	}

	entry := C.bucketOf(key).FindFirst(matchKey(key))
	if entry == nil {
		return
	}

	value = entry.Value
	found = true

	return
}

// Contains - Returns true if there is a record with the given key, false if not or if the hash map is nil or destroyed
func (C *ChainHashMap) Contains(key string) bool {
	if !C.valid() {
		return false
	}

	return C.bucketOf(key).FindFirst(matchKey(key)) != nil
}

// Remove - Returns the value of the record corresponding to key and removes the record from the hash map.
// Ownership of the value is handed back to the caller.
//
// It returns:
//   - value is the removed value, nil if not found
//   - found is true if a record was removed, false if there was none or if the hash map is nil or destroyed
func (C *ChainHashMap) Remove(key string) (value any, found bool) {
	if !C.valid() {
		return
	}

	bucket := C.bucketOf(key)
	visited := bucket.ForEach(func(entry *model.Entry) bool {
		if entry.Key == key {
			found = true
			return false
		}
		return true
	})
	if !found {
		return
	}

	entry := bucket.RemoveAt(visited - 1)
	value = entry.Value
	entry.Key = ""
	entry.Value = nil
	C.count--

	return
}

// Count - Returns the number of records, 0 (zero) if the hash map is nil or destroyed
func (C *ChainHashMap) Count() int64 {
	if !C.valid() {
		return 0
	}
	return C.count
}

// Capacity - Returns the number of buckets, 0 (zero) if the hash map is nil or destroyed
func (C *ChainHashMap) Capacity() int64 {
	if !C.valid() {
		return 0
	}
	return C.capacity
}

// ForEach - Calls visit with key and value of every record, bucket by bucket in bucket order and within a bucket
// in insertion order. The walk stops as soon as visit returns false. The hash map must not be modified from
// within visit.
//
// It returns:
//   - visited is the number of times visit was called, 0 (zero) if visit is nil or the hash map is nil or destroyed
func (C *ChainHashMap) ForEach(visit func(key string, value any) bool) (visited int64) {
	if !C.valid() || visit == nil {
		return
	}

	visited = C.forEachEntry(func(entry *model.Entry) bool { return visit(entry.Key, entry.Value) })

	return
}

// Destroy - Releases all records and buckets, values are left untouched. The hash map is unusable afterwards.
func (C *ChainHashMap) Destroy() {
	C.DestroyWith(nil)
}

// DestroyWith - Releases all records and buckets calling destructor (if not nil) with the value of each record.
// The hash map is unusable afterwards, and destroying a nil or already destroyed hash map does nothing.
func (C *ChainHashMap) DestroyWith(destructor func(value any)) {
	if !C.valid() {
		return
	}

	// Release records
	C.forEachEntry(func(entry *model.Entry) bool {
		if destructor != nil {
			destructor(entry.Value)
		}
		entry.Key = ""
		entry.Value = nil
		return true
	})

	// Release buckets
	for i, bucket := range C.buckets {
		bucket.Destroy()
		C.buckets[i] = nil
	}
	C.buckets = nil
	C.capacity = 0
	C.count = 0
}
