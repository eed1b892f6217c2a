package chainhashmap

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// InvalidArgument - Custom error to inform that an operation was called on a nil or destroyed hash map,
// or with some other unusable argument
type InvalidArgument struct {
	msg string
}

// Error - Used to notify an invalid argument
func (E InvalidArgument) Error() string {
	if E.msg == "" {
		return "invalid argument"
	}
	return E.msg
}

// Is - Makes any InvalidArgument match an InvalidArgument target regardless of message
func (E InvalidArgument) Is(target error) bool {
	_, ok := target.(InvalidArgument)
	return ok
}

// ResizeFailed - Custom error to inform that the hash map could not be rebuilt with a new capacity.
// The hash map is left exactly as it was before the attempt.
type ResizeFailed struct {
	msg string
	err error
}

// Error - Used to notify a failed resize
func (E ResizeFailed) Error() string {
	msg := E.msg
	if msg == "" {
		msg = "resize failed"
	}
	if E.err != nil {
		return msg + ": " + E.err.Error()
	}
	return msg
}

// Is - Makes any ResizeFailed match a ResizeFailed target regardless of message and cause
func (E ResizeFailed) Is(target error) bool {
	_, ok := target.(ResizeFailed)
	return ok
}

// Unwrap - Returns the error that caused the resize to fail
func (E ResizeFailed) Unwrap() error {
	return E.err
}
