package ticker

import "fmt"

// The ticker distinguishes two kinds of failures.
//
// A ValidationError reports bad input at the boundary: an unknown stock type
// at construction, an unregistered symbol on lookup, a duplicate symbol on
// registration. A DomainError reports a query whose result is mathematically
// undefined: a dividend yield or P/E ratio at zero price, or the share index
// of an empty market.
//
// Neither is recoverable inside the package: both propagate to the caller,
// which turns them into re-prompts or messages.

// ValidationError reports invalid input data.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// DomainError reports a query with a mathematically undefined result.
type DomainError struct {
	msg string
}

func (e *DomainError) Error() string { return e.msg }

func domainf(format string, args ...any) error {
	return &DomainError{msg: fmt.Sprintf(format, args...)}
}
