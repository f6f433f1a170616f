package subscriptions

import "time"

// Validation error codes for CreateSubscriptionRequest. The codes are part of
// the API contract and surface verbatim in error responses.
const (
	CodeInvalidUserID         = 100
	CodeInvalidName           = 101
	CodeInvalidProvider       = 102
	CodeInvalidExpirationDate = 103
)

// Error is a single validation failure.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// ValidationResult accumulates validation failures in check order.
type ValidationResult struct {
	errors []Error
}

func (r *ValidationResult) Add(err Error) {
	r.errors = append(r.errors, err)
}

func (r *ValidationResult) HasErrors() bool {
	return len(r.errors) > 0
}

func (r *ValidationResult) Errors() []Error {
	return r.errors
}

// Validator checks a CreateSubscriptionRequest for structural and business
// validity. It performs no I/O. The clock is injected so "expiration lies in
// the future" is deterministic under test.
type Validator struct {
	now func() time.Time
}

func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{now: now}
}

// Validate runs every check regardless of earlier failures and returns all
// collected errors in fixed code order.
func (v *Validator) Validate(req CreateSubscriptionRequest) ValidationResult {
	var result ValidationResult
	if req.UserID == nil {
		result.Add(Error{Code: CodeInvalidUserID, Message: "userId is invalid"})
	}
	if req.Name == "" {
		result.Add(Error{Code: CodeInvalidName, Message: "name is invalid"})
	}
	if _, ok := ParseProvider(req.Provider); !ok {
		result.Add(Error{Code: CodeInvalidProvider, Message: "provider is invalid"})
	}
	if req.ExpirationDate == nil || !req.ExpirationDate.After(v.now()) {
		result.Add(Error{Code: CodeInvalidExpirationDate, Message: "expirationDate is invalid"})
	}
	return result
}
