package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ModoServicio indica si el despacho fue atendido por un bombero (FULL)
// o realizado por el propio cliente (SELF).
type ModoServicio string

const (
	ServicioFull ModoServicio = "FULL"
	ServicioSelf ModoServicio = "SELF"
)

// FusionTransaction es una transacción del sistema de surtidores Fusion,
// normalizada a partir de una fila del export CSV.
type FusionTransaction struct {
	ID             int64           `json:"id,omitempty"`
	Fecha          time.Time       `json:"fecha"`
	IDTurnoFusion  int             `json:"idTurnoFusion"`
	NumeroTurno    int             `json:"numeroTurno"`
	Bomba          int             `json:"bomba"`
	Manguera       int             `json:"manguera"`
	Combustible    string          `json:"combustible"`
	ModoServicio   ModoServicio    `json:"modoServicio"`
	Volumen        decimal.Decimal `json:"volumen"`
	Total          decimal.Decimal `json:"total"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	TipoPago       string          `json:"tipoPago"`
	Hora           string          `json:"hora"`
	Correlativo    string          `json:"correlativo"`
	Estado         string          `json:"estado"`
}
