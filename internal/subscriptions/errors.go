package subscriptions

import "fmt"

// ValidationError is returned by Upsert when the request fails validation.
// It carries the full ordered list of validation failures.
type ValidationError struct {
	Errors []Error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("subscription request failed validation with %d error(s)", len(e.Errors))
}

// StateError is returned by Cancel and Expire when the current status forbids
// the requested transition.
type StateError struct {
	ID     int64
	Status Status
}

func (e *StateError) Error() string {
	return fmt.Sprintf("subscription %d is not active: status is %s", e.ID, e.Status)
}
