package fusion

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/estacionsb/cuadres-api/internal/domain"
)

// Columnas del export Fusion. Los nombres vienen tal cual del sistema de
// surtidores, no los controlamos nosotros.
const (
	colFechaInicio    = "Fecha de inicio"
	colIDTurnoFusion  = "Id Turno Fusion"
	colBomba          = "Bomba"
	colManguera       = "Manguera"
	colCombustible    = "Combustible"
	colModoServicio   = "Modo Servicio"
	colVolumen        = "Volumen"
	colTotal          = "Total"
	colPrecioUnitario = "Precio Unitario"
	colTipoPago       = "Tipo Pago"
	colHoraFin        = "Hora de fin"
	colCorrelativo    = "Correlativo"
	colEstado         = "Estado"
)

// Formatos de timestamp que el Fusion ha emitido en distintas versiones.
var layoutsFecha = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"2006-01-02",
}

// NormalizarRegistro convierte un registro crudo en una transacción tipada.
// NumeroTurno queda en cero: se asigna después con AsignarTurnos, que
// necesita mirar el archivo completo. Función pura sobre un registro.
func NormalizarRegistro(registro Registro, fila int) (domain.FusionTransaction, error) {
	fecha, err := parseFecha(registro, colFechaInicio, fila)
	if err != nil {
		return domain.FusionTransaction{}, err
	}

	idTurno, err := parseEntero(registro, colIDTurnoFusion, fila)
	if err != nil {
		return domain.FusionTransaction{}, err
	}

	bomba, err := parseEntero(registro, colBomba, fila)
	if err != nil {
		return domain.FusionTransaction{}, err
	}

	manguera, err := parseEntero(registro, colManguera, fila)
	if err != nil {
		return domain.FusionTransaction{}, err
	}

	modo, err := parseModoServicio(registro, fila)
	if err != nil {
		return domain.FusionTransaction{}, err
	}

	volumen, err := parseDecimal(registro, colVolumen, fila)
	if err != nil {
		return domain.FusionTransaction{}, err
	}

	total, err := parseDecimal(registro, colTotal, fila)
	if err != nil {
		return domain.FusionTransaction{}, err
	}

	precioUnitario, err := parseDecimal(registro, colPrecioUnitario, fila)
	if err != nil {
		return domain.FusionTransaction{}, err
	}

	return domain.FusionTransaction{
		Fecha:          fecha,
		IDTurnoFusion:  idTurno,
		Bomba:          bomba,
		Manguera:       manguera,
		Combustible:    strings.TrimSpace(registro[colCombustible]),
		ModoServicio:   modo,
		Volumen:        volumen,
		Total:          total,
		PrecioUnitario: precioUnitario,
		TipoPago:       strings.TrimSpace(registro[colTipoPago]),
		Hora:           strings.TrimSpace(registro[colHoraFin]),
		Correlativo:    strings.TrimSpace(registro[colCorrelativo]),
		Estado:         strings.TrimSpace(registro[colEstado]),
	}, nil
}

func parseEntero(registro Registro, campo string, fila int) (int, error) {
	crudo := strings.TrimSpace(registro[campo])

	valor, err := strconv.Atoi(crudo)
	if err != nil {
		return 0, &ErrorCampo{Campo: campo, Valor: crudo, Fila: fila, Err: err}
	}

	return valor, nil
}

func parseDecimal(registro Registro, campo string, fila int) (decimal.Decimal, error) {
	crudo := strings.TrimSpace(registro[campo])

	valor, err := decimal.NewFromString(crudo)
	if err != nil {
		return decimal.Zero, &ErrorCampo{Campo: campo, Valor: crudo, Fila: fila, Err: err}
	}

	return valor, nil
}

func parseFecha(registro Registro, campo string, fila int) (time.Time, error) {
	crudo := strings.TrimSpace(registro[campo])

	for _, layout := range layoutsFecha {
		if fecha, err := time.Parse(layout, crudo); err == nil {
			return fecha, nil
		}
	}

	return time.Time{}, &ErrorCampo{Campo: campo, Valor: crudo, Fila: fila}
}

func parseModoServicio(registro Registro, fila int) (domain.ModoServicio, error) {
	crudo := strings.TrimSpace(registro[colModoServicio])

	switch domain.ModoServicio(crudo) {
	case domain.ServicioFull:
		return domain.ServicioFull, nil
	case domain.ServicioSelf:
		return domain.ServicioSelf, nil
	}

	return "", &ErrorModoServicio{Valor: crudo, Fila: fila}
}
