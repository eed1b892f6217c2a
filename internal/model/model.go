package model

// Entry - Represents one key/value pair stored in a bucket.
// The Key is a private copy owned by the hash map, the Value is owned by the caller and never inspected.
type Entry struct {
	Key   string
	Value any
}
