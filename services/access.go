package services

import (
	"github.com/google/uuid"

	"github.com/gramseva/gramseva-backend/constants"
)

// Requester identifies the authenticated caller of a store operation.
type Requester struct {
	UserID      uuid.UUID
	RuralBodyID uuid.UUID
	Role        constants.RoleEnum
}

// Resource carries the tenant and (optionally) the owner of the
// target record. OwnerID is nil for resources without an owner axis.
type Resource struct {
	RuralBodyID uuid.UUID
	OwnerID     *uuid.UUID
}

// AccessScope selects which axis a resident is checked against.
type AccessScope int

const (
	// ScopeOwner restricts residents to resources they own.
	ScopeOwner AccessScope = iota
	// ScopeTenant lets any resident of the resource's rural body in;
	// used for the community board, voting, and announcements.
	ScopeTenant
)

// CanAccess is the single allow/deny rule applied across complaints,
// residents, and announcements. Admins are tenant-scoped; residents
// are owner- or tenant-scoped depending on the operation. Deny it by
// returning false; callers translate that to ErrNotFound so the
// existence of other tenants' resources is masked.
func CanAccess(req Requester, res Resource, scope AccessScope) bool {
	if req.RuralBodyID != res.RuralBodyID {
		return false
	}
	if req.Role == constants.RoleAdmin {
		return true
	}
	if scope == ScopeTenant {
		return true
	}
	return res.OwnerID != nil && *res.OwnerID == req.UserID
}

// RequesterFromClaims builds a Requester from parsed token claims.
// Malformed ids yield the zero UUID, which can never match a stored
// tenant or owner.
func RequesterFromClaims(userID, ruralBodyID, role string) Requester {
	uid, _ := uuid.Parse(userID)
	rbid, _ := uuid.Parse(ruralBodyID)
	return Requester{UserID: uid, RuralBodyID: rbid, Role: constants.RoleEnum(role)}
}
