package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/estacionsb/cuadres-api/internal/domain"
	"github.com/estacionsb/cuadres-api/internal/usecases/cuadre"
	"github.com/estacionsb/cuadres-api/pkg/apiErrors"
	"github.com/estacionsb/cuadres-api/pkg/middleware"
	"github.com/estacionsb/cuadres-api/pkg/utils"
)

type GuardarCuadresEstacionRequest struct {
	Fecha   string                   `json:"fecha"`
	Cuadres []*domain.CuadreEstacion `json:"cuadres"`
}

type GuardarCuadresTiendaRequest struct {
	Fecha   string                 `json:"fecha"`
	Cuadres []*domain.CuadreTienda `json:"cuadres"`
}

func GuardarCuadresEstacion(service cuadre.CuadreService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GuardarCuadresEstacionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisición inválido", nil)
			return
		}

		fecha, err := utils.ParseDate(req.Fecha)
		if err != nil || req.Fecha == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha inválida, se espera AAAA-MM-DD", nil)
			return
		}

		if len(req.Cuadres) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "No se enviaron cuadres", nil)
			return
		}

		if claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); ok {
			for _, c := range req.Cuadres {
				c.Usuario = claims.UserEmail
			}
		}

		cuadres, err := service.GuardarCuadresEstacion(r.Context(), *fecha, req.Cuadres)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al guardar los cuadres de estación", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cuadres); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
		}
	}
}

func ObtenerCuadresEstacion(service cuadre.CuadreService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fecha, err := utils.ParseDate(r.URL.Query().Get("fecha"))
		if err != nil || r.URL.Query().Get("fecha") == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha inválida, se espera AAAA-MM-DD", nil)
			return
		}

		cuadres, err := service.ObtenerCuadresEstacion(r.Context(), *fecha)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar los cuadres de estación", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cuadres); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
		}
	}
}

func GuardarCuadresTienda(service cuadre.CuadreService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GuardarCuadresTiendaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisición inválido", nil)
			return
		}

		fecha, err := utils.ParseDate(req.Fecha)
		if err != nil || req.Fecha == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha inválida, se espera AAAA-MM-DD", nil)
			return
		}

		if len(req.Cuadres) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "No se enviaron cuadres", nil)
			return
		}

		if claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); ok {
			for _, c := range req.Cuadres {
				c.Usuario = claims.UserEmail
			}
		}

		cuadres, err := service.GuardarCuadresTienda(r.Context(), *fecha, req.Cuadres)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al guardar los cuadres de tienda", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cuadres); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
		}
	}
}

func ObtenerCuadresTienda(service cuadre.CuadreService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fecha, err := utils.ParseDate(r.URL.Query().Get("fecha"))
		if err != nil || r.URL.Query().Get("fecha") == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha inválida, se espera AAAA-MM-DD", nil)
			return
		}

		cuadres, err := service.ObtenerCuadresTienda(r.Context(), *fecha)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar los cuadres de tienda", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(cuadres); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
		}
	}
}

// TotalesSistema expone los totales por turno que reportó el sistema para
// una fecha. El query param tipo distingue estación y tienda.
func TotalesSistema(service cuadre.CuadreService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fecha, err := utils.ParseDate(r.URL.Query().Get("fecha"))
		if err != nil || r.URL.Query().Get("fecha") == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha inválida, se espera AAAA-MM-DD", nil)
			return
		}

		tipo := r.URL.Query().Get("tipo")
		if tipo == "" {
			tipo = cuadre.TipoEstacion
		}

		totales, err := service.TotalesSistema(r.Context(), *fecha, tipo)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(totales); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
		}
	}
}

func Consolidado(service cuadre.CuadreService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fecha, err := utils.ParseDate(r.URL.Query().Get("fecha"))
		if err != nil || r.URL.Query().Get("fecha") == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha inválida, se espera AAAA-MM-DD", nil)
			return
		}

		consolidado, err := service.Consolidado(r.Context(), *fecha)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al generar el consolidado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(consolidado); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
		}
	}
}
