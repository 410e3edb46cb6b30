package gateway

import "fmt"

// Failure wraps a provider error with the logical operation that
// triggered it. Failed calls are never cached, so a retry is a fresh
// fetch.
type Failure struct {
	Operation string
	Err       error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("gateway %s: %v", f.Operation, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

func newFailure(operation string, err error) *Failure {
	return &Failure{Operation: operation, Err: err}
}
