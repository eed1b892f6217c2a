package chain

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/internal/model"
)

// node - One link in the list
type node struct {
	entry *model.Entry
	next  *node
}

// List - Singly linked list of entries keeping insertion order.
// It enforces no uniqueness of keys, that is left to the owner of the list.
type List struct {
	first     *node
	last      *node
	size      int
	maxLength int
}

// NewList - Returns a pointer to a new empty and unbounded List
func NewList() *List {
	return &List{}
}

// NewBoundedList - Returns a pointer to a new empty List that refuses to grow beyond maxLength entries.
// A maxLength of 0 (zero) or less gives an unbounded list.
func NewBoundedList(maxLength int) *List {
	if maxLength < 0 {
		maxLength = 0
	}
	return &List{maxLength: maxLength}
}

// Append - Adds an entry at the end of the list
//   - entry is the entry to add
//
// It returns:
//   - err is of type Full if the list is bounded and already holds maxLength entries
func (L *List) Append(entry *model.Entry) (err error) {
	if L.maxLength > 0 && L.size >= L.maxLength {
		err = Full{msg: fmt.Sprintf("chain full, max length is %d", L.maxLength)}
		return
	}

	n := &node{entry: entry}
	if L.last == nil {
		L.first = n
	} else {
		L.last.next = n
	}
	L.last = n
	L.size++

	return
}

// Size - Returns the number of entries in the list
func (L *List) Size() int {
	return L.size
}

// IsEmpty - Returns true if the list holds no entries
func (L *List) IsEmpty() bool {
	return L.size == 0
}

// First - Returns the first entry without removing it, nil if the list is empty
func (L *List) First() *model.Entry {
	if L.first == nil {
		return nil
	}
	return L.first.entry
}

// Last - Returns the last entry without removing it, nil if the list is empty
func (L *List) Last() *model.Entry {
	if L.last == nil {
		return nil
	}
	return L.last.entry
}

// RemoveAt - Detaches and returns the entry at position index.
// An index outside 0 -> Size() - 1 returns nil and leaves the list unchanged.
func (L *List) RemoveAt(index int) *model.Entry {
	if index < 0 || index >= L.size {
		return nil
	}

	var prev *node
	n := L.first
	for i := 0; i < index; i++ {
		prev = n
		n = n.next
	}

	if prev == nil {
		L.first = n.next
	} else {
		prev.next = n.next
	}
	if n == L.last {
		L.last = prev
	}
	L.size--

	return n.entry
}

// FindFirst - Returns the first entry for which match returns true, nil if there is none
func (L *List) FindFirst(match func(entry *model.Entry) bool) *model.Entry {
	if match == nil {
		return nil
	}
	for n := L.first; n != nil; n = n.next {
		if match(n.entry) {
			return n.entry
		}
	}
	return nil
}

// ForEach - Calls visit with each entry in insertion order until visit returns false or the list is exhausted.
//
// It returns:
//   - the number of times visit was called, 0 (zero) if visit is nil
func (L *List) ForEach(visit func(entry *model.Entry) bool) (visited int) {
	if visit == nil {
		return
	}
	for n := L.first; n != nil; n = n.next {
		visited++
		if !visit(n.entry) {
			return
		}
	}
	return
}

// Destroy - Releases the list structure, entries are left as they are
func (L *List) Destroy() {
	L.DestroyWith(nil)
}

// DestroyWith - Releases the list structure calling destructor (if not nil) with each remaining entry
func (L *List) DestroyWith(destructor func(entry *model.Entry)) {
	n := L.first
	for n != nil {
		next := n.next
		if destructor != nil {
			destructor(n.entry)
		}
		n.entry = nil
		n.next = nil
		n = next
	}
	L.first = nil
	L.last = nil
	L.size = 0
}
