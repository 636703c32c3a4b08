package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Turnos de la tienda de conveniencia. La estación usa turnos numéricos
// (1..4); la tienda solo distingue día y noche.
const (
	TurnoTiendaDia   = "DIA"
	TurnoTiendaNoche = "NOCHE"
)

// ConceptosEstacion son los valores ingresados manualmente por el encargado
// para un turno de la estación.
type ConceptosEstacion struct {
	Depositos    decimal.Decimal `json:"depositos"`
	Remanente    decimal.Decimal `json:"remanente"`
	Visanet      decimal.Decimal `json:"visanet"`
	Credomatic   decimal.Decimal `json:"credomatic"`
	BacFlota     decimal.Decimal `json:"bacFlota"`
	Versatec     decimal.Decimal `json:"versatec"`
	FlotaUno     decimal.Decimal `json:"flotaUno"`
	Cupones      decimal.Decimal `json:"cupones"`
	ValesPrepago decimal.Decimal `json:"valesPrepago"`
	ValesDiarios decimal.Decimal `json:"valesDiarios"`
	Anticipos    decimal.Decimal `json:"anticipos"`
	Faltantes    decimal.Decimal `json:"faltantes"`
}

// CuadreEstacion es el cuadre manual de un turno de la estación contra el
// total que reportó el sistema Fusion para ese turno.
type CuadreEstacion struct {
	ID            int64             `json:"id,omitempty"`
	Fecha         time.Time         `json:"fecha"`
	Turno         int               `json:"turno"`
	HorarioInicio string            `json:"horarioInicio"`
	HorarioFin    string            `json:"horarioFin"`
	Conceptos     ConceptosEstacion `json:"conceptos"`
	TotalManual   decimal.Decimal   `json:"totalManual"`
	TotalSistema  decimal.Decimal   `json:"totalSistema"`
	Diferencia    decimal.Decimal   `json:"diferencia"`
	Usuario       string            `json:"usuario"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// ConceptosTienda son los valores ingresados manualmente para un turno de
// la tienda de conveniencia.
type ConceptosTienda struct {
	Depositos     decimal.Decimal `json:"depositos"`
	Remanente     decimal.Decimal `json:"remanente"`
	Visanet       decimal.Decimal `json:"visanet"`
	Credomatic    decimal.Decimal `json:"credomatic"`
	Cheques       decimal.Decimal `json:"cheques"`
	Cupones       decimal.Decimal `json:"cupones"`
	Versatec      decimal.Decimal `json:"versatec"`
	CajaChica     decimal.Decimal `json:"cajaChica"`
	VentasHugoApp decimal.Decimal `json:"ventasHugoApp"`
	PedidosYa     decimal.Decimal `json:"pedidosYa"`
	UberEats      decimal.Decimal `json:"uberEats"`
	Promociones   decimal.Decimal `json:"promociones"`
	Faltantes     decimal.Decimal `json:"faltantes"`
	Anticipos     decimal.Decimal `json:"anticipos"`
}

// CuadreTienda es el cuadre manual de un turno de la tienda. El total del
// sistema se digita a mano porque la tienda no tiene export automático.
type CuadreTienda struct {
	ID            int64           `json:"id,omitempty"`
	Fecha         time.Time       `json:"fecha"`
	Turno         string          `json:"turno"`
	HorarioInicio string          `json:"horarioInicio"`
	HorarioFin    string          `json:"horarioFin"`
	Conceptos     ConceptosTienda `json:"conceptos"`
	TotalManual   decimal.Decimal `json:"totalManual"`
	TotalSistema  decimal.Decimal `json:"totalSistema"`
	Diferencia    decimal.Decimal `json:"diferencia"`
	Usuario       string          `json:"usuario"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ConceptoConsolidado es una línea del reporte consolidado del día:
// un concepto con su aporte de estación, de tienda y el total combinado.
type ConceptoConsolidado struct {
	Concepto string          `json:"concepto"`
	Estacion decimal.Decimal `json:"estacion"`
	Tienda   decimal.Decimal `json:"tienda"`
	Total    decimal.Decimal `json:"total"`
}
