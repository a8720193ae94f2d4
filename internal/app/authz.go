package app

import "github.com/priyanshu599/backendRantease/internal/domain"

// Authorization guard. Pure and stateless; every role and ownership gate
// in the services and HTTP layer goes through these two checks, and a
// failed check is always surfaced as a forbidden outcome to the caller.

// Allow reports whether the caller's role satisfies the required role.
// Roles are checked by strict equality; admin does not implicitly pass
// landlord/tenant gates.
func Allow(role, required domain.Role) bool {
	return role == required
}

// AllowOwner reports whether the caller owns the resource.
func AllowOwner(currentUserID, resourceOwnerID string) bool {
	return currentUserID != "" && currentUserID == resourceOwnerID
}
