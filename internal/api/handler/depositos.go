package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/estacionsb/cuadres-api/internal/domain"
	"github.com/estacionsb/cuadres-api/internal/usecases/deposito"
	"github.com/estacionsb/cuadres-api/pkg/apiErrors"
	"github.com/estacionsb/cuadres-api/pkg/middleware"
	"github.com/estacionsb/cuadres-api/pkg/utils"
)

type GuardarDepositosRequest struct {
	Fecha     string                     `json:"fecha"`
	Depositos []*domain.DepositoBancario `json:"depositos"`
}

func GuardarDepositos(service deposito.DepositoService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GuardarDepositosRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisición inválido", nil)
			return
		}

		fecha, err := utils.ParseDate(req.Fecha)
		if err != nil || req.Fecha == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha inválida, se espera AAAA-MM-DD", nil)
			return
		}

		if len(req.Depositos) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "No se enviaron depósitos", nil)
			return
		}

		for _, d := range req.Depositos {
			if d.NumeroBoleta == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cada depósito necesita número de boleta", nil)
				return
			}
		}

		if claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); ok {
			for _, d := range req.Depositos {
				d.Usuario = claims.UserEmail
			}
		}

		depositos, err := service.GuardarDepositos(r.Context(), *fecha, req.Depositos)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al guardar los depósitos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(depositos); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
		}
	}
}

func ObtenerDepositos(service deposito.DepositoService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fecha, err := utils.ParseDate(r.URL.Query().Get("fecha"))
		if err != nil || r.URL.Query().Get("fecha") == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Fecha inválida, se espera AAAA-MM-DD", nil)
			return
		}

		depositos, err := service.ObtenerDepositos(r.Context(), *fecha)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Error al consultar los depósitos", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(depositos); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
		}
	}
}
