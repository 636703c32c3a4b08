package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/estacionsb/cuadres-api/internal/usecases/fusion"
	"github.com/estacionsb/cuadres-api/pkg/apiErrors"
)

// Límite del archivo multipart en memoria (10 MB, el export diario pesa
// unos pocos cientos de KB).
const maxFusionFileSize = 10 << 20

// TotalizarFusion totaliza el archivo sin persistir nada. Sirve para que el
// encargado revise los turnos antes de confirmar la carga.
func TotalizarFusion(service fusion.FusionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contenido, ok := leerArchivoFusion(w, r)
		if !ok {
			return
		}

		resultado, err := service.Totalizar(contenido)
		if err != nil {
			escribirErrorFusion(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resultado); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
		}
	}
}

// ProcesarFusion totaliza el archivo y guarda las transacciones. Volver a
// subir el mismo archivo no duplica datos.
func ProcesarFusion(service fusion.FusionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contenido, ok := leerArchivoFusion(w, r)
		if !ok {
			return
		}

		resultado, err := service.ProcesarArchivo(r.Context(), contenido)
		if err != nil {
			escribirErrorFusion(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resultado); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al enviar la respuesta", nil)
		}
	}
}

func leerArchivoFusion(w http.ResponseWriter, r *http.Request) (string, bool) {
	if err := r.ParseMultipartForm(maxFusionFileSize); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrArchivoNoProvisto, "No se pudo leer el formulario multipart", nil)
		return "", false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrArchivoNoProvisto, "Falta el archivo en el campo 'file'", nil)
		return "", false
	}
	defer file.Close()

	contenido, err := io.ReadAll(file)
	if err != nil {
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al leer el archivo", nil)
		return "", false
	}

	return string(contenido), true
}

// escribirErrorFusion traduce los errores tipados del procesamiento a los
// códigos de la API.
func escribirErrorFusion(w http.ResponseWriter, err error) {
	var filaMalformada *fusion.ErrorFilaMalformada
	var campo *fusion.ErrorCampo
	var modo *fusion.ErrorModoServicio

	switch {
	case errors.Is(err, fusion.ErrSinEncabezado):
		apiErrors.WriteError(w, apiErrors.ErrArchivoMalformado, err.Error(), nil)

	case errors.As(err, &filaMalformada):
		apiErrors.WriteError(w, apiErrors.ErrArchivoMalformado, err.Error(), map[string]any{
			"fila":      filaMalformada.Fila,
			"esperadas": filaMalformada.Esperadas,
			"obtenidas": filaMalformada.Obtenidas,
		})

	case errors.As(err, &campo):
		apiErrors.WriteError(w, apiErrors.ErrCampoInvalido, err.Error(), map[string]any{
			"fila":  campo.Fila,
			"campo": campo.Campo,
			"valor": campo.Valor,
		})

	case errors.As(err, &modo):
		apiErrors.WriteError(w, apiErrors.ErrModoDesconocido, err.Error(), map[string]any{
			"fila":  modo.Fila,
			"valor": modo.Valor,
		})

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error al procesar el archivo", nil)
	}
}
