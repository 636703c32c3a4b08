package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de error que devuelve la API
const (
	// Errores de autenticación (AUTH)
	ErrInvalidCredentials    = "AUTH_001" // Credenciales inválidas
	ErrUserDisabled          = "AUTH_002" // Usuario desactivado
	ErrUserNotFound          = "AUTH_003" // Usuario no encontrado
	ErrInvalidToken          = "AUTH_004" // Token inválido
	ErrExpiredToken          = "AUTH_005" // Token expirado
	ErrInsufficientPrivilege = "AUTH_006" // Privilegios insuficientes
	ErrUserAlreadyExists     = "AUTH_007" // Usuario ya existe

	// Errores de validación (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisición inválida
	ErrMissingRequiredData = "VAL_002" // Datos obligatorios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de datos inválido

	// Errores de procesamiento del export Fusion (FUS)
	ErrArchivoMalformado  = "FUS_001" // Archivo sin encabezado o fila con columnas de más o de menos
	ErrCampoInvalido      = "FUS_002" // Celda que no pudo convertirse a su tipo
	ErrModoDesconocido    = "FUS_003" // Modo de servicio fuera de FULL/SELF
	ErrArchivoNoProvisto  = "FUS_004" // Request sin archivo adjunto

	// Errores del servidor (SRV)
	ErrInternalServer    = "SRV_001" // Error interno del servidor
	ErrDatabaseOperation = "SRV_002" // Error de operación de base de datos
)

// Mapeo de códigos de error a status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrUserAlreadyExists:     http.StatusBadRequest,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrArchivoMalformado:     http.StatusUnprocessableEntity,
	ErrCampoInvalido:         http.StatusUnprocessableEntity,
	ErrModoDesconocido:       http.StatusUnprocessableEntity,
	ErrArchivoNoProvisto:     http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
}

// APIError representa un error de API estandarizado
type APIError struct {
	Code    string `json:"code"`              // Código de error para el cliente
	Message string `json:"message,omitempty"` // Mensaje descriptivo (opcional)
	Details any    `json:"details,omitempty"` // Detalles adicionales (opcional)
}

// WriteError escribe el error estandarizado en la respuesta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError crea un error de API a partir de un error Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Error desconocido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
