package entities

// ProcessorError is a failed call to the payment processor. Message is the
// processor's own message when it sent one, otherwise a generic fallback.
type ProcessorError struct {
	Operation string
	Message   string
	Err       error
}

func (e *ProcessorError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return e.Operation + ": " + e.Message + ": " + e.Err.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *ProcessorError) Unwrap() error { return e.Err }
