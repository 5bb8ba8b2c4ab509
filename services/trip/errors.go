package trip

import "errors"

var (
	// ErrTripNotFound means no trip matches the given id or tracking id.
	ErrTripNotFound = errors.New("trip not found")
	// ErrDriverNotFound means the driver profile could not be resolved.
	ErrDriverNotFound = errors.New("driver not found")
	// ErrRequesterNotFound means the booking user no longer resolves to a
	// valid identity.
	ErrRequesterNotFound = errors.New("requesting user not found")
	// ErrAlreadyProcessed means the trip was not in the expected state for
	// the requested transition; a racing writer may have won.
	ErrAlreadyProcessed = errors.New("trip already processed")
	// ErrNotTripDriver means the acting driver is not the one the trip was
	// addressed to.
	ErrNotTripDriver = errors.New("trip is not assigned to this driver")
	// ErrNotAccepted means completion was requested for a trip that is not
	// currently accepted.
	ErrNotAccepted = errors.New("trip is not in accepted state")
	// ErrNoLocation means the driver has not reported a position yet.
	ErrNoLocation = errors.New("driver location not available")
	// ErrNotADriver means the authenticated user has no driver profile.
	ErrNotADriver = errors.New("user is not registered as a driver")
)

// ValidationError carries a user-facing message for malformed input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErr(msg string) error { return &ValidationError{Message: msg} }
