package entity

import "github.com/google/uuid"

// Pure authorization predicates over an in-memory (user, profile) pair.
// These are the single enforcement layer for role-gated mutations: every
// usecase that performs one calls them before touching storage. The database
// backs ownership and uniqueness only.

// IsRole reports whether the user holds exactly the given role
func IsRole(u *User, role Role) bool {
	return u != nil && u.Role == role
}

// HasAnyRole reports whether the user holds one of the given roles
func HasAnyRole(u *User, roles ...Role) bool {
	if u == nil {
		return false
	}
	for _, role := range roles {
		if u.Role == role {
			return true
		}
	}
	return false
}

// CanAccessHospital reports whether the user may act on behalf of the given
// hospital. Platform admins may act on any hospital; hospital admins only on
// the hospital their profile is affiliated with.
func CanAccessHospital(u *User, p *Profile, hospitalID uuid.UUID) bool {
	if u == nil {
		return false
	}
	switch u.Role {
	case RolePlatformAdmin:
		return true
	case RoleHospitalAdmin:
		return p != nil && p.HospitalID != nil && *p.HospitalID == hospitalID
	default:
		return false
	}
}

// CanManageRequest reports whether the user may manage blood requests for the
// given hospital. A nil hospitalID means "any hospital", which only hospital
// admins with an affiliation (or platform admins) satisfy.
func CanManageRequest(u *User, p *Profile, hospitalID *uuid.UUID) bool {
	if u == nil {
		return false
	}
	if u.Role == RolePlatformAdmin {
		return true
	}
	if u.Role != RoleHospitalAdmin {
		return false
	}
	if p == nil || p.HospitalID == nil {
		return false
	}
	if hospitalID == nil {
		return true
	}
	return *p.HospitalID == *hospitalID
}
