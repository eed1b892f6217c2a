package chainhashmap

import "github.com/gostonefire/chainhashmap/internal/model"

// Records - Is used to iterate over records one by one.
// It works on a snapshot taken when Iter was called, later changes to the hash map are not reflected.
type Records struct {
	keys   []string
	values []any
	pos    int
}

// Iter - Returns a pointer to a new Records iterator over all records in bucket order and within a bucket in
// insertion order. A nil or destroyed hash map gives an iterator with no records.
func (C *ChainHashMap) Iter() *Records {
	records := &Records{}
	if !C.valid() {
		return records
	}

	records.keys = make([]string, 0, C.count)
	records.values = make([]any, 0, C.count)
	C.forEachEntry(func(entry *model.Entry) bool {
		records.keys = append(records.keys, entry.Key)
		records.values = append(records.values, entry.Value)
		return true
	})

	return records
}

// HasNext - Returns true if there are more records to be fetched from a call to Next.
func (R *Records) HasNext() bool {
	return R.pos < len(R.keys)
}

// Next - Returns next record.
// It returns:
//   - key is the key of the record
//   - value is the value of the record
//   - err is of type NoRecordFound if there are no more records when calling this function.
func (R *Records) Next() (key string, value any, err error) {
	if !R.HasNext() {
		err = NoRecordFound{}
		return
	}

	key = R.keys[R.pos]
	value = R.values[R.pos]
	R.pos++

	return
}
