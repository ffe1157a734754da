package services

import "errors"

// Domain errors. Handlers map these to HTTP statuses; everything not
// listed here is treated as an infrastructure failure and answered
// with a generic 500.
var (
	// ErrNotFound covers both genuinely missing resources and
	// cross-tenant/non-owner access, so existence is never leaked.
	ErrNotFound = errors.New("resource not found")

	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrStateConflict rejects owner edits/deletes once a complaint
	// has left the pending state.
	ErrStateConflict = errors.New("cannot modify a processed complaint")

	ErrEmailTaken       = errors.New("user already exists")
	ErrRegNumberTaken   = errors.New("organization with this registration number already exists")
	ErrAdminUndeletable = errors.New("cannot delete an admin account")

	ErrInvalidCategory  = errors.New("invalid complaint category")
	ErrInvalidSeverity  = errors.New("invalid complaint severity")
	ErrInvalidStatus    = errors.New("invalid complaint status")
	ErrInvalidVoteType  = errors.New("invalid vote type")
	ErrUnknownRuralBody = errors.New("selected rural body does not exist")
)

// IsDomainError reports whether err is one of the domain sentinels
// above; anything else is an infrastructure failure and must not
// reach clients verbatim.
func IsDomainError(err error) bool {
	for _, domain := range []error{
		ErrNotFound, ErrInvalidCredentials, ErrStateConflict,
		ErrEmailTaken, ErrRegNumberTaken, ErrAdminUndeletable,
		ErrInvalidCategory, ErrInvalidSeverity, ErrInvalidStatus,
		ErrInvalidVoteType, ErrUnknownRuralBody,
	} {
		if errors.Is(err, domain) {
			return true
		}
	}
	return false
}
