package styledline

// WriteError is returned when the sink fails while a line or run is drawn.
// Bytes written before the failure are not rolled back; the line itself is left untouched.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return "styledline: write failed: " + e.Err.Error()
}

// Unwrap returns the sink error so errors.Is and errors.As see through it.
func (e *WriteError) Unwrap() error {
	return e.Err
}
