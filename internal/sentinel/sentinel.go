package sentinel

var _ error = Error("")

// Error is an immutable error type backed by a string constant.
type Error string

// Error implements the error interface.
func (e Error) Error() string {
	return string(e)
}
