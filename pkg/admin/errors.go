package admin

import "github.com/mjwhitta/errors"

// Error kinds surfaced by this package. Remote faults (*soap.Fault) and
// transport errors are passed through unchanged.
var (
	// ErrNotAuthenticated is returned when a credential fragment is
	// requested before login or after the token expired.
	ErrNotAuthenticated = errors.New("must authenticate first")

	// ErrUnresolvedEntity is returned when a lookup or delete by selector
	// cannot be resolved to a remote entity.
	ErrUnresolvedEntity = errors.New("entity could not be resolved")

	// ErrUnexpectedResponse is returned when single-result extraction finds
	// zero or multiple elements.
	ErrUnexpectedResponse = errors.New("unexpected response shape")
)
