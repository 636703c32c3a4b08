package cuadre

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/estacionsb/cuadres-api/infrastructure/repository/mocks"
	"github.com/estacionsb/cuadres-api/internal/domain"
)

func dec(valor string) decimal.Decimal {
	return decimal.RequireFromString(valor)
}

func servicioDePrueba(t *testing.T) (CuadreService, *mocks.MockCuadreEstacionRepository, *mocks.MockCuadreTiendaRepository, *mocks.MockFusionTransactionRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	estacionRepo := mocks.NewMockCuadreEstacionRepository(ctrl)
	tiendaRepo := mocks.NewMockCuadreTiendaRepository(ctrl)
	fusionRepo := mocks.NewMockFusionTransactionRepository(ctrl)

	return NewService(estacionRepo, tiendaRepo, fusionRepo), estacionRepo, tiendaRepo, fusionRepo
}

func TestGuardarCuadresEstacion(t *testing.T) {
	fecha := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Recalcula totales y diferencia antes de guardar", func(t *testing.T) {
		servicio, estacionRepo, _, fusionRepo := servicioDePrueba(t)

		fusionRepo.EXPECT().
			TotalesPorTurno(gomock.Any(), fecha).
			Return(map[int]decimal.Decimal{3: dec("1500.00")}, nil)
		estacionRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			Return(nil)

		cuadre := &domain.CuadreEstacion{
			Turno: 3,
			Conceptos: domain.ConceptosEstacion{
				Depositos: dec("1000.00"),
				Visanet:   dec("350.00"),
				Remanente: dec("100.00"),
			},
			// Los totales del request se ignoran.
			TotalManual:  dec("9999.99"),
			TotalSistema: dec("9999.99"),
			Usuario:      "cajero@estacionsb.com",
		}

		guardados, err := servicio.GuardarCuadresEstacion(context.Background(), fecha, []*domain.CuadreEstacion{cuadre})

		require.NoError(t, err)
		require.Len(t, guardados, 1)

		assert.Equal(t, fecha, guardados[0].Fecha)
		assert.Equal(t, "06:30", guardados[0].HorarioInicio)
		assert.Equal(t, "22:00", guardados[0].HorarioFin)
		assert.True(t, guardados[0].TotalManual.Equal(dec("1450.00")))
		assert.True(t, guardados[0].TotalSistema.Equal(dec("1500.00")))
		assert.True(t, guardados[0].Diferencia.Equal(dec("-50.00")))
	})

	t.Run("Un turno sin transacciones Fusion usa total del sistema en cero", func(t *testing.T) {
		servicio, estacionRepo, _, fusionRepo := servicioDePrueba(t)

		fusionRepo.EXPECT().
			TotalesPorTurno(gomock.Any(), fecha).
			Return(map[int]decimal.Decimal{}, nil)
		estacionRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			Return(nil)

		cuadre := &domain.CuadreEstacion{
			Turno:     1,
			Conceptos: domain.ConceptosEstacion{Depositos: dec("200.00")},
		}

		guardados, err := servicio.GuardarCuadresEstacion(context.Background(), fecha, []*domain.CuadreEstacion{cuadre})

		require.NoError(t, err)
		assert.True(t, guardados[0].TotalSistema.IsZero())
		assert.True(t, guardados[0].Diferencia.Equal(dec("200.00")))
	})

	t.Run("Un turno desconocido rechaza el lote completo", func(t *testing.T) {
		servicio, _, _, fusionRepo := servicioDePrueba(t)

		fusionRepo.EXPECT().
			TotalesPorTurno(gomock.Any(), fecha).
			Return(map[int]decimal.Decimal{}, nil)

		cuadre := &domain.CuadreEstacion{Turno: 9}

		guardados, err := servicio.GuardarCuadresEstacion(context.Background(), fecha, []*domain.CuadreEstacion{cuadre})

		assert.Nil(t, guardados)
		assert.ErrorContains(t, err, "turno de estación desconocido")
	})
}

func TestGuardarCuadresTienda(t *testing.T) {
	fecha := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Conserva el total del sistema digitado", func(t *testing.T) {
		servicio, _, tiendaRepo, _ := servicioDePrueba(t)

		tiendaRepo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			Return(nil)

		cuadre := &domain.CuadreTienda{
			Turno: domain.TurnoTiendaDia,
			Conceptos: domain.ConceptosTienda{
				Depositos: dec("500.00"),
				CajaChica: dec("50.00"),
			},
			TotalSistema: dec("540.00"),
		}

		guardados, err := servicio.GuardarCuadresTienda(context.Background(), fecha, []*domain.CuadreTienda{cuadre})

		require.NoError(t, err)
		assert.Equal(t, "06:30", guardados[0].HorarioInicio)
		assert.Equal(t, "23:59", guardados[0].HorarioFin)
		assert.True(t, guardados[0].TotalManual.Equal(dec("550.00")))
		assert.True(t, guardados[0].TotalSistema.Equal(dec("540.00")))
		assert.True(t, guardados[0].Diferencia.Equal(dec("10.00")))
	})

	t.Run("Un turno desconocido rechaza el lote completo", func(t *testing.T) {
		servicio, _, _, _ := servicioDePrueba(t)

		cuadre := &domain.CuadreTienda{Turno: "TARDE"}

		guardados, err := servicio.GuardarCuadresTienda(context.Background(), fecha, []*domain.CuadreTienda{cuadre})

		assert.Nil(t, guardados)
		assert.ErrorContains(t, err, "turno de tienda desconocido")
	})
}

func TestTotalesSistema(t *testing.T) {
	fecha := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Estación consulta las transacciones Fusion", func(t *testing.T) {
		servicio, _, _, fusionRepo := servicioDePrueba(t)

		esperado := map[int]decimal.Decimal{1: dec("800.00"), 2: dec("430.00")}
		fusionRepo.EXPECT().
			TotalesPorTurno(gomock.Any(), fecha).
			Return(esperado, nil)

		totales, err := servicio.TotalesSistema(context.Background(), fecha, TipoEstacion)

		require.NoError(t, err)
		assert.Equal(t, esperado, totales)
	})

	t.Run("Tienda devuelve un mapa vacío", func(t *testing.T) {
		servicio, _, _, _ := servicioDePrueba(t)

		totales, err := servicio.TotalesSistema(context.Background(), fecha, TipoTienda)

		require.NoError(t, err)
		assert.Empty(t, totales)
	})

	t.Run("Tipo desconocido", func(t *testing.T) {
		servicio, _, _, _ := servicioDePrueba(t)

		_, err := servicio.TotalesSistema(context.Background(), fecha, "lavado")

		assert.ErrorContains(t, err, "tipo de cuadre desconocido")
	})
}

func TestConsolidado(t *testing.T) {
	fecha := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Combina estación y tienda por concepto, en orden fijo", func(t *testing.T) {
		servicio, estacionRepo, tiendaRepo, _ := servicioDePrueba(t)

		estacionRepo.EXPECT().
			GetByFecha(gomock.Any(), fecha).
			Return([]*domain.CuadreEstacion{
				{Turno: 1, Conceptos: domain.ConceptosEstacion{Depositos: dec("300.00"), BacFlota: dec("120.00")}},
				{Turno: 3, Conceptos: domain.ConceptosEstacion{Depositos: dec("700.00")}},
			}, nil)
		tiendaRepo.EXPECT().
			GetByFecha(gomock.Any(), fecha).
			Return([]*domain.CuadreTienda{
				{Turno: domain.TurnoTiendaDia, Conceptos: domain.ConceptosTienda{Depositos: dec("250.00"), CajaChica: dec("40.00")}},
			}, nil)

		consolidado, err := servicio.Consolidado(context.Background(), fecha)

		require.NoError(t, err)
		require.Len(t, consolidado, len(conceptosConsolidado))

		porConcepto := make(map[string]domain.ConceptoConsolidado, len(consolidado))
		for _, linea := range consolidado {
			porConcepto[linea.Concepto] = linea
		}

		depositos := porConcepto["depositos"]
		assert.True(t, depositos.Estacion.Equal(dec("1000.00")))
		assert.True(t, depositos.Tienda.Equal(dec("250.00")))
		assert.True(t, depositos.Total.Equal(dec("1250.00")))

		// bacFlota solo existe del lado de la estación.
		bacFlota := porConcepto["bacFlota"]
		assert.True(t, bacFlota.Estacion.Equal(dec("120.00")))
		assert.True(t, bacFlota.Tienda.IsZero())

		// cajaChica solo existe del lado de la tienda.
		cajaChica := porConcepto["cajaChica"]
		assert.True(t, cajaChica.Estacion.IsZero())
		assert.True(t, cajaChica.Total.Equal(dec("40.00")))

		assert.Equal(t, "depositos", consolidado[0].Concepto)
		assert.Equal(t, "faltantes", consolidado[len(consolidado)-1].Concepto)
	})

	t.Run("Una fecha sin cuadres produce el reporte en cero", func(t *testing.T) {
		servicio, estacionRepo, tiendaRepo, _ := servicioDePrueba(t)

		estacionRepo.EXPECT().GetByFecha(gomock.Any(), fecha).Return(nil, nil)
		tiendaRepo.EXPECT().GetByFecha(gomock.Any(), fecha).Return(nil, nil)

		consolidado, err := servicio.Consolidado(context.Background(), fecha)

		require.NoError(t, err)
		require.Len(t, consolidado, len(conceptosConsolidado))
		for _, linea := range consolidado {
			assert.True(t, linea.Total.IsZero(), "concepto %s", linea.Concepto)
		}
	})
}
