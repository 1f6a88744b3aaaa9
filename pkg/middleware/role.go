package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/analytics-engine/pkg/apiErrors"
)

const (
	RolePlatformAdmin = 1
	RoleTenantAdmin   = 2
	RoleAnalyst       = 3
)

// RoleMiddleware restricts a route to the given role ids.
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warn("access attempt without authentication")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "user is not authenticated", nil)
				return
			}

			for _, role := range allowedRoles {
				if claims.RoleID == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			logrus.WithFields(logrus.Fields{
				"user_id": claims.UserID,
				"role_id": claims.RoleID,
				"path":    r.URL.Path,
			}).Warn("access denied")
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "you are not allowed to access this resource", nil)
		})
	}
}

func PlatformAdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RolePlatformAdmin})
}

// Admins allows platform and tenant administrators.
func Admins() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RolePlatformAdmin, RoleTenantAdmin})
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RolePlatformAdmin, RoleTenantAdmin, RoleAnalyst})
}
