package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TotalesProducto acumula volumen y monto de un combustible.
type TotalesProducto struct {
	Volumen decimal.Decimal `json:"volumen"`
	Monto   decimal.Decimal `json:"monto"`
}

// TotalizacionDetallada es el resultado de agrupar un conjunto de
// transacciones por modo de servicio, con desglose por combustible.
type TotalizacionDetallada struct {
	Volumen       decimal.Decimal            `json:"volumen"`
	Monto         decimal.Decimal            `json:"monto"`
	Transacciones int                        `json:"transacciones"`
	PorProducto   map[string]TotalesProducto `json:"porProducto"`
}

// TotalizacionPorTipoServicio agrupa las dos variantes de servicio.
type TotalizacionPorTipoServicio struct {
	ServicioCompleto TotalizacionDetallada `json:"servicioCompleto"`
	Autoservicio     TotalizacionDetallada `json:"autoservicio"`
}

// TotalizacionBomba totaliza una bomba individual. Las bombas sin
// transacciones igual aparecen con totales en cero; las vistas de cuadre
// cuentan con la flota completa.
type TotalizacionBomba struct {
	Bomba            int                        `json:"bomba"`
	Volumen          decimal.Decimal            `json:"volumen"`
	Monto            decimal.Decimal            `json:"monto"`
	Transacciones    int                        `json:"transacciones"`
	ServicioCompleto decimal.Decimal            `json:"servicioCompleto"`
	Autoservicio     decimal.Decimal            `json:"autoservicio"`
	PorProducto      map[string]TotalesProducto `json:"porProducto"`
}

// TotalesGlobales son los totales directos de un conjunto de transacciones,
// sin ningún desglose.
type TotalesGlobales struct {
	Volumen       decimal.Decimal `json:"volumen"`
	Monto         decimal.Decimal `json:"monto"`
	Transacciones int             `json:"transacciones"`
}

// TotalizacionTurno es la vista completa de un turno: totales por modo de
// servicio, por bomba y los totales directos del turno.
type TotalizacionTurno struct {
	NumeroTurno     int                         `json:"numeroTurno"`
	IDFusion        int                         `json:"idFusion"`
	PorTipoServicio TotalizacionPorTipoServicio `json:"porTipoServicio"`
	PorBomba        map[int]TotalizacionBomba   `json:"porBomba"`
	Totales         TotalesGlobales             `json:"totales"`
}

// ResumenDia tiene la misma forma que un turno pero abarca todas las
// transacciones del día, ignorando los límites de turno.
type ResumenDia struct {
	PorTipoServicio TotalizacionPorTipoServicio `json:"porTipoServicio"`
	PorBomba        map[int]TotalizacionBomba   `json:"porBomba"`
	Totales         TotalesGlobales             `json:"totales"`
}

// ResultadoFusion es la salida completa del procesamiento de un archivo:
// la lista normalizada (para persistencia), la fecha inferida de la primera
// transacción (nil si el archivo no tiene filas), los turnos ordenados por
// número y el resumen del día.
type ResultadoFusion struct {
	Transacciones []FusionTransaction `json:"transacciones"`
	Fecha         *time.Time          `json:"fecha"`
	Turnos        []TotalizacionTurno `json:"turnos"`
	ResumenDia    ResumenDia          `json:"resumenDia"`
}
