package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/estacionsb/cuadres-api/internal/domain"
	"github.com/estacionsb/cuadres-api/pkg/apiErrors"
)

// Roles de la aplicación
const (
	RoleAdmin     = 1
	RoleEncargado = 2
	RoleCajero    = 3
)

// RoleMiddleware restringe el acceso según el rol del usuario autenticado
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)

			if !ok {
				logrus.Warning("Intento de acceso sin autenticación")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuario no autenticado", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.UserRoleID == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acceso denegado para usuario ID=%d, Role=%d", userClaims.UserID, userClaims.UserRoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "No tiene permiso para acceder a este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acceso solo a administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin})
}

// AdminOrEncargado permite acceso a administradores y encargados de turno
func AdminOrEncargado() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin, RoleEncargado})
}

// AllRoles permite acceso a cualquier usuario autenticado
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin, RoleEncargado, RoleCajero})
}
