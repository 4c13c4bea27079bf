package middleware

import (
	"net/http"

	"lifelink-backend/internal/domain/entity"
	"lifelink-backend/pkg/response"
)

// RequireRole creates a middleware that checks if the user has any of the
// required roles. The role is read from context (set by AuthMiddleware from
// JWT claims); usecases re-check against the database before mutating.
func RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetUserRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if entity.Role(role) == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequirePlatformAdmin is a convenience middleware for platform-admin endpoints
func RequirePlatformAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RolePlatformAdmin)(next)
}

// RequireHospitalAdmin allows hospital admins and platform admins
func RequireHospitalAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleHospitalAdmin, entity.RolePlatformAdmin)(next)
}
