package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kedaihq/staffops-backend-go/internal/domain/staff"
	"github.com/kedaihq/staffops-backend-go/internal/handler/http/response"
)

// RequireManager requires manager or supervisor role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Manager or supervisor role required")
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Manager or supervisor role required")
			return
		}

		if !staff.Role(roleStr).CanManage() {
			response.Forbidden(w, "Manager or supervisor role required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
