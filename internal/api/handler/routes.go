package handler

import (
	"net/http"

	"github.com/estacionsb/cuadres-api/internal/api/handler/router"
	"github.com/estacionsb/cuadres-api/internal/usecases/authenticating"
	"github.com/estacionsb/cuadres-api/internal/usecases/cuadre"
	"github.com/estacionsb/cuadres-api/internal/usecases/deposito"
	"github.com/estacionsb/cuadres-api/internal/usecases/fusion"
	"github.com/estacionsb/cuadres-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Fusion(service fusion.FusionService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/fusion/totalizar",
			Method:      http.MethodPost,
			Handler:     TotalizarFusion(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrEncargado()},
		},
		{
			Path:        "/v1/fusion/procesar",
			Method:      http.MethodPost,
			Handler:     ProcesarFusion(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrEncargado()},
		},
	}
}

func Cuadres(service cuadre.CuadreService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cuadres/estacion",
			Method:      http.MethodPost,
			Handler:     GuardarCuadresEstacion(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrEncargado()},
		},
		{
			Path:        "/v1/cuadres/estacion",
			Method:      http.MethodGet,
			Handler:     ObtenerCuadresEstacion(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/cuadres/tienda",
			Method:      http.MethodPost,
			Handler:     GuardarCuadresTienda(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrEncargado()},
		},
		{
			Path:        "/v1/cuadres/tienda",
			Method:      http.MethodGet,
			Handler:     ObtenerCuadresTienda(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/cuadres/sistema-total",
			Method:      http.MethodGet,
			Handler:     TotalesSistema(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/consolidado",
			Method:      http.MethodGet,
			Handler:     Consolidado(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrEncargado()},
		},
	}
}

func Depositos(service deposito.DepositoService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/depositos",
			Method:      http.MethodPost,
			Handler:     GuardarDepositos(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrEncargado()},
		},
		{
			Path:        "/v1/depositos",
			Method:      http.MethodGet,
			Handler:     ObtenerDepositos(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
