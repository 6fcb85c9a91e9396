package postcode

import (
	"errors"
	"fmt"
)

// InvalidPostcodeError marks a malformed or unresolvable postcode. It is
// user-correctable: the boundary turns it into a redirect carrying an error
// code, never a server error.
type InvalidPostcodeError struct {
	Postcode string
}

func (e *InvalidPostcodeError) Error() string {
	return fmt.Sprintf("invalid postcode %q", e.Postcode)
}

// ProviderError marks a geocoding dependency failure: network error, timeout,
// or a 5xx from the provider. Surfaced to the boundary as a server error with
// the underlying message preserved for operators. Not retried here; retry
// policy belongs to the caller.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("postcode provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// IsInvalid reports whether err is an InvalidPostcodeError.
func IsInvalid(err error) bool {
	var ipe *InvalidPostcodeError
	return errors.As(err, &ipe)
}

// IsProviderError reports whether err is a ProviderError.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
