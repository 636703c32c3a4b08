package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepositoBancario es una boleta de depósito registrada para el día.
// Solo se registra; la conciliación bancaria no es parte de este sistema.
type DepositoBancario struct {
	ID              int64           `json:"id,omitempty"`
	Referencia      string          `json:"referencia"`
	Fecha           time.Time       `json:"fecha"`
	NumeroBoleta    string          `json:"numeroBoleta"`
	Tipo            string          `json:"tipo"`
	TurnosIncluidos string          `json:"turnosIncluidos"`
	MontoEfectivo   decimal.Decimal `json:"montoEfectivo"`
	FechaDeposito   time.Time       `json:"fechaDeposito"`
	Observaciones   *string         `json:"observaciones"`
	Usuario         string          `json:"usuario"`
	CreatedAt       time.Time       `json:"created_at"`
}
