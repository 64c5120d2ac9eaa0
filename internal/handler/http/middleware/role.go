package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hotelops/hotelops-backend-go/internal/domain/employee"
	"github.com/hotelops/hotelops-backend-go/internal/handler/http/response"
)

// RequireApprover admits only roles with approval authority.
func RequireApprover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromClaims(r)
		if !ok || !role.CanApprove() {
			response.Forbidden(w, "Approver role required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireRole admits only the given role or roles outranking it.
func RequireRole(required employee.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := roleFromClaims(r)
			if !ok {
				response.Forbidden(w, fmt.Sprintf("Role '%s' required", required))
				return
			}

			if role != required && !role.Outranks(required) {
				response.Forbidden(w, fmt.Sprintf("Role '%s' required, but user role is '%s'", required, role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func roleFromClaims(r *http.Request) (employee.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}

	role := employee.Role(roleStr)
	return role, role.IsValid()
}
