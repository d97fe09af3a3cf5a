package transfer

import "fmt"

// ValidationError reports the first business rule an otherwise well-formed
// instruction violated. It is terminal: no balance is touched after one.
type ValidationError struct {
	Code   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

// InvalidDataError is the structured failure surfaced to callers when
// parsing or validation rejects an instruction. Payload carries the
// failed-shape result (nulled transaction fields, status "failed" and the
// originating code); Cause is the underlying syntax or validation error.
type InvalidDataError struct {
	Payload Result
	Cause   error
}

func (e *InvalidDataError) Error() string {
	return fmt.Sprintf("invalid data: %s", e.Payload.StatusReason)
}

func (e *InvalidDataError) Unwrap() error {
	return e.Cause
}
