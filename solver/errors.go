package solver

import "fmt"

// SingularSystemError reports an influence matrix the dense LU factorization
// could not solve, typically from degenerate or self-overlapping geometry.
type SingularSystemError struct {
	N         int
	Condition float64
	Cause     error
}

func (e *SingularSystemError) Error() string {
	return fmt.Sprintf("singular %dx%d influence system (condition %.3g): %v", e.N, e.N, e.Condition, e.Cause)
}

func (e *SingularSystemError) Unwrap() error { return e.Cause }

// NumericInstabilityError reports a non-finite velocity or pressure
// coefficient. Results are never silently replaced with zeros.
type NumericInstabilityError struct {
	Quantity string
	Index    int
	Value    float64
}

func (e *NumericInstabilityError) Error() string {
	return fmt.Sprintf("non-finite %s at index %d: %v", e.Quantity, e.Index, e.Value)
}
