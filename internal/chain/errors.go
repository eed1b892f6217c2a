package chain

// Full - Custom error to inform that a bounded list can't take more entries
type Full struct {
	msg string
}

// Error - Used to notify that the list is full
func (E Full) Error() string {
	if E.msg == "" {
		return "chain full"
	}
	return E.msg
}

// Is - Makes any Full match a Full target regardless of message
func (E Full) Is(target error) bool {
	_, ok := target.(Full)
	return ok
}
