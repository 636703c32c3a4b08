package cuadre

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/estacionsb/cuadres-api/infrastructure/repository"
	"github.com/estacionsb/cuadres-api/internal/domain"
)

const (
	TipoEstacion = "estacion"
	TipoTienda   = "tienda"
)

// horario de cada turno de la estación, según la operación real.
type horario struct {
	inicio string
	fin    string
}

var horariosEstacion = map[int]horario{
	1: {inicio: "00:00", fin: "05:00"},
	2: {inicio: "05:00", fin: "06:30"},
	3: {inicio: "06:30", fin: "22:00"},
	4: {inicio: "22:00", fin: "00:00"},
}

var horariosTienda = map[string]horario{
	domain.TurnoTiendaNoche: {inicio: "00:00", fin: "06:30"},
	domain.TurnoTiendaDia:   {inicio: "06:30", fin: "23:59"},
}

type CuadreService interface {
	GuardarCuadresEstacion(ctx context.Context, fecha time.Time, cuadres []*domain.CuadreEstacion) ([]*domain.CuadreEstacion, error)
	ObtenerCuadresEstacion(ctx context.Context, fecha time.Time) ([]*domain.CuadreEstacion, error)
	GuardarCuadresTienda(ctx context.Context, fecha time.Time, cuadres []*domain.CuadreTienda) ([]*domain.CuadreTienda, error)
	ObtenerCuadresTienda(ctx context.Context, fecha time.Time) ([]*domain.CuadreTienda, error)
	TotalesSistema(ctx context.Context, fecha time.Time, tipo string) (map[int]decimal.Decimal, error)
	Consolidado(ctx context.Context, fecha time.Time) ([]domain.ConceptoConsolidado, error)
}

type Service struct {
	estacionRepo repository.CuadreEstacionRepository
	tiendaRepo   repository.CuadreTiendaRepository
	fusionRepo   repository.FusionTransactionRepository
}

func NewService(
	estacionRepo repository.CuadreEstacionRepository,
	tiendaRepo repository.CuadreTiendaRepository,
	fusionRepo repository.FusionTransactionRepository,
) CuadreService {
	return &Service{
		estacionRepo: estacionRepo,
		tiendaRepo:   tiendaRepo,
		fusionRepo:   fusionRepo,
	}
}

// GuardarCuadresEstacion recalcula los totales de cada cuadre antes de
// guardarlo: el total manual es la suma de los doce conceptos digitados y el
// total del sistema sale de las transacciones Fusion ya almacenadas para ese
// turno. Los totales que vengan en el request se ignoran.
func (s *Service) GuardarCuadresEstacion(ctx context.Context, fecha time.Time, cuadres []*domain.CuadreEstacion) ([]*domain.CuadreEstacion, error) {
	totalesSistema, err := s.fusionRepo.TotalesPorTurno(ctx, fecha)
	if err != nil {
		return nil, errors.Wrap(err, "error consultando totales del sistema")
	}

	for _, cuadre := range cuadres {
		h, ok := horariosEstacion[cuadre.Turno]
		if !ok {
			return nil, fmt.Errorf("turno de estación desconocido: %d", cuadre.Turno)
		}

		cuadre.Fecha = fecha
		cuadre.HorarioInicio = h.inicio
		cuadre.HorarioFin = h.fin
		cuadre.TotalManual = sumarConceptosEstacion(cuadre.Conceptos)

		totalSistema, ok := totalesSistema[cuadre.Turno]
		if !ok {
			totalSistema = decimal.Zero
		}
		cuadre.TotalSistema = totalSistema
		cuadre.Diferencia = cuadre.TotalManual.Sub(cuadre.TotalSistema)

		if err := s.estacionRepo.Upsert(ctx, cuadre); err != nil {
			return nil, errors.Wrapf(err, "error guardando cuadre de estación del turno %d", cuadre.Turno)
		}
	}

	logrus.WithFields(logrus.Fields{
		"fecha":   fecha.Format(time.DateOnly),
		"cuadres": len(cuadres),
	}).Info("Cuadres de estación guardados")

	return cuadres, nil
}

func (s *Service) ObtenerCuadresEstacion(ctx context.Context, fecha time.Time) ([]*domain.CuadreEstacion, error) {
	return s.estacionRepo.GetByFecha(ctx, fecha)
}

// GuardarCuadresTienda es el equivalente para la tienda de conveniencia. La
// tienda no tiene export automático, así que el total del sistema viene
// digitado en el request y solo se recalcula la diferencia.
func (s *Service) GuardarCuadresTienda(ctx context.Context, fecha time.Time, cuadres []*domain.CuadreTienda) ([]*domain.CuadreTienda, error) {
	for _, cuadre := range cuadres {
		h, ok := horariosTienda[cuadre.Turno]
		if !ok {
			return nil, fmt.Errorf("turno de tienda desconocido: %s", cuadre.Turno)
		}

		cuadre.Fecha = fecha
		cuadre.HorarioInicio = h.inicio
		cuadre.HorarioFin = h.fin
		cuadre.TotalManual = sumarConceptosTienda(cuadre.Conceptos)
		cuadre.Diferencia = cuadre.TotalManual.Sub(cuadre.TotalSistema)

		if err := s.tiendaRepo.Upsert(ctx, cuadre); err != nil {
			return nil, errors.Wrapf(err, "error guardando cuadre de tienda del turno %s", cuadre.Turno)
		}
	}

	logrus.WithFields(logrus.Fields{
		"fecha":   fecha.Format(time.DateOnly),
		"cuadres": len(cuadres),
	}).Info("Cuadres de tienda guardados")

	return cuadres, nil
}

func (s *Service) ObtenerCuadresTienda(ctx context.Context, fecha time.Time) ([]*domain.CuadreTienda, error) {
	return s.tiendaRepo.GetByFecha(ctx, fecha)
}

// TotalesSistema devuelve los montos por turno que reportó el sistema para
// una fecha. Solo la estación tiene datos automáticos; para la tienda el
// mapa viene vacío porque sus totales se digitan a mano.
func (s *Service) TotalesSistema(ctx context.Context, fecha time.Time, tipo string) (map[int]decimal.Decimal, error) {
	switch tipo {
	case TipoEstacion:
		return s.fusionRepo.TotalesPorTurno(ctx, fecha)
	case TipoTienda:
		return map[int]decimal.Decimal{}, nil
	default:
		return nil, fmt.Errorf("tipo de cuadre desconocido: %s", tipo)
	}
}

// conceptosConsolidado fija el orden de las líneas del reporte. Un concepto
// que solo existe de un lado aparece igual, con cero en el otro.
var conceptosConsolidado = []string{
	"depositos",
	"remanente",
	"visanet",
	"credomatic",
	"bacFlota",
	"versatec",
	"flotaUno",
	"cupones",
	"cheques",
	"valesPrepago",
	"valesDiarios",
	"cajaChica",
	"ventasHugoApp",
	"pedidosYa",
	"uberEats",
	"promociones",
	"anticipos",
	"faltantes",
}

// Consolidado combina los cuadres de estación y tienda de una fecha en un
// reporte por concepto, sumando todos los turnos de cada lado.
func (s *Service) Consolidado(ctx context.Context, fecha time.Time) ([]domain.ConceptoConsolidado, error) {
	cuadresEstacion, err := s.estacionRepo.GetByFecha(ctx, fecha)
	if err != nil {
		return nil, errors.Wrap(err, "error consultando cuadres de estación")
	}

	cuadresTienda, err := s.tiendaRepo.GetByFecha(ctx, fecha)
	if err != nil {
		return nil, errors.Wrap(err, "error consultando cuadres de tienda")
	}

	estacion := make(map[string]decimal.Decimal)
	for _, cuadre := range cuadresEstacion {
		for concepto, monto := range conceptosEstacionPorNombre(cuadre.Conceptos) {
			estacion[concepto] = estacion[concepto].Add(monto)
		}
	}

	tienda := make(map[string]decimal.Decimal)
	for _, cuadre := range cuadresTienda {
		for concepto, monto := range conceptosTiendaPorNombre(cuadre.Conceptos) {
			tienda[concepto] = tienda[concepto].Add(monto)
		}
	}

	consolidado := make([]domain.ConceptoConsolidado, 0, len(conceptosConsolidado))
	for _, concepto := range conceptosConsolidado {
		e := estacion[concepto]
		t := tienda[concepto]
		consolidado = append(consolidado, domain.ConceptoConsolidado{
			Concepto: concepto,
			Estacion: e,
			Tienda:   t,
			Total:    e.Add(t),
		})
	}

	return consolidado, nil
}

func sumarConceptosEstacion(c domain.ConceptosEstacion) decimal.Decimal {
	total := decimal.Zero
	for _, monto := range conceptosEstacionPorNombre(c) {
		total = total.Add(monto)
	}
	return total
}

func sumarConceptosTienda(c domain.ConceptosTienda) decimal.Decimal {
	total := decimal.Zero
	for _, monto := range conceptosTiendaPorNombre(c) {
		total = total.Add(monto)
	}
	return total
}

func conceptosEstacionPorNombre(c domain.ConceptosEstacion) map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"depositos":    c.Depositos,
		"remanente":    c.Remanente,
		"visanet":      c.Visanet,
		"credomatic":   c.Credomatic,
		"bacFlota":     c.BacFlota,
		"versatec":     c.Versatec,
		"flotaUno":     c.FlotaUno,
		"cupones":      c.Cupones,
		"valesPrepago": c.ValesPrepago,
		"valesDiarios": c.ValesDiarios,
		"anticipos":    c.Anticipos,
		"faltantes":    c.Faltantes,
	}
}

func conceptosTiendaPorNombre(c domain.ConceptosTienda) map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"depositos":     c.Depositos,
		"remanente":     c.Remanente,
		"visanet":       c.Visanet,
		"credomatic":    c.Credomatic,
		"cheques":       c.Cheques,
		"cupones":       c.Cupones,
		"versatec":      c.Versatec,
		"cajaChica":     c.CajaChica,
		"ventasHugoApp": c.VentasHugoApp,
		"pedidosYa":     c.PedidosYa,
		"uberEats":      c.UberEats,
		"promociones":   c.Promociones,
		"faltantes":     c.Faltantes,
		"anticipos":     c.Anticipos,
	}
}
