package analytics

import "fmt"

// ValidationError reports malformed input rejected before any computation:
// missing columns, unsorted or duplicate dates, non-positive prices.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

func newValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// DomainError reports a computation that structurally cannot proceed, such as
// annualizing over a zero-length period or an empty series. Callers should
// treat it as "not enough data to report" rather than a crash.
type DomainError struct {
	Metric string
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Metric, e.Reason)
}

func newDomainError(metric, format string, args ...interface{}) *DomainError {
	return &DomainError{Metric: metric, Reason: fmt.Sprintf(format, args...)}
}
