package fusion

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estacionsb/cuadres-api/internal/domain"
)

func dec(valor string) decimal.Decimal {
	return decimal.RequireFromString(valor)
}

func transaccionesDePrueba() []domain.FusionTransaction {
	return []domain.FusionTransaction{
		{NumeroTurno: 1, Bomba: 1, Combustible: "Regular", ModoServicio: domain.ServicioFull, Volumen: dec("5.000"), Total: dec("100.00")},
		{NumeroTurno: 1, Bomba: 2, Combustible: "Super", ModoServicio: domain.ServicioSelf, Volumen: dec("3.000"), Total: dec("75.00")},
		{NumeroTurno: 2, Bomba: 1, Combustible: "Regular", ModoServicio: domain.ServicioFull, Volumen: dec("2.500"), Total: dec("50.00")},
		{NumeroTurno: 2, Bomba: 1, Combustible: "Diesel", ModoServicio: domain.ServicioSelf, Volumen: dec("10.000"), Total: dec("180.00")},
	}
}

func TestTotalizarPorTipoServicio(t *testing.T) {
	transacciones := transaccionesDePrueba()

	t.Run("Suma solo las transacciones del modo indicado", func(t *testing.T) {
		full := TotalizarPorTipoServicio(transacciones, domain.ServicioFull)

		assert.True(t, full.Volumen.Equal(dec("7.5")))
		assert.True(t, full.Monto.Equal(dec("150.00")))
		assert.Equal(t, 2, full.Transacciones)

		regular, ok := full.PorProducto["Regular"]
		require.True(t, ok)
		assert.True(t, regular.Monto.Equal(dec("150.00")))
		assert.True(t, regular.Volumen.Equal(dec("7.5")))

		_, tieneDiesel := full.PorProducto["Diesel"]
		assert.False(t, tieneDiesel)
	})

	t.Run("Conjunto vacío produce totales en cero", func(t *testing.T) {
		vacio := TotalizarPorTipoServicio(nil, domain.ServicioFull)

		assert.True(t, vacio.Volumen.IsZero())
		assert.True(t, vacio.Monto.IsZero())
		assert.Zero(t, vacio.Transacciones)
		assert.Empty(t, vacio.PorProducto)
	})
}

func TestTotalizarPorBomba(t *testing.T) {
	transacciones := transaccionesDePrueba()

	t.Run("Emite una entrada por cada bomba de la flota", func(t *testing.T) {
		porBomba := TotalizarPorBomba(transacciones, 10)

		require.Len(t, porBomba, 10)
		for numBomba := 1; numBomba <= 10; numBomba++ {
			entrada, ok := porBomba[numBomba]
			require.True(t, ok, "falta la bomba %d", numBomba)
			assert.Equal(t, numBomba, entrada.Bomba)
		}
	})

	t.Run("Bombas sin transacciones quedan en cero", func(t *testing.T) {
		porBomba := TotalizarPorBomba(transacciones, 10)

		ociosa := porBomba[7]
		assert.True(t, ociosa.Volumen.IsZero())
		assert.True(t, ociosa.Monto.IsZero())
		assert.Zero(t, ociosa.Transacciones)
		assert.Empty(t, ociosa.PorProducto)
	})

	t.Run("Reparte el monto entre servicio completo y autoservicio", func(t *testing.T) {
		porBomba := TotalizarPorBomba(transacciones, 10)

		bomba1 := porBomba[1]
		assert.True(t, bomba1.Monto.Equal(dec("330.00")))
		assert.True(t, bomba1.ServicioCompleto.Equal(dec("150.00")))
		assert.True(t, bomba1.Autoservicio.Equal(dec("180.00")))
		assert.Equal(t, 3, bomba1.Transacciones)

		diesel, ok := bomba1.PorProducto["Diesel"]
		require.True(t, ok)
		assert.True(t, diesel.Volumen.Equal(dec("10.000")))
	})
}

func TestTotalizarTurno(t *testing.T) {
	transacciones := transaccionesDePrueba()

	turno1 := TotalizarTurno(transacciones, 1, 203, 10)

	assert.Equal(t, 1, turno1.NumeroTurno)
	assert.Equal(t, 203, turno1.IDFusion)
	assert.True(t, turno1.Totales.Monto.Equal(dec("175.00")))
	assert.True(t, turno1.Totales.Volumen.Equal(dec("8.000")))
	assert.Equal(t, 2, turno1.Totales.Transacciones)
	assert.True(t, turno1.PorTipoServicio.ServicioCompleto.Monto.Equal(dec("100.00")))
	assert.True(t, turno1.PorTipoServicio.Autoservicio.Monto.Equal(dec("75.00")))
	assert.True(t, turno1.PorBomba[1].Monto.Equal(dec("100.00")))
	assert.True(t, turno1.PorBomba[2].Monto.Equal(dec("75.00")))
}

func TestGenerarResumenDia(t *testing.T) {
	transacciones := transaccionesDePrueba()

	resumen := GenerarResumenDia(transacciones, 10)

	assert.True(t, resumen.Totales.Monto.Equal(dec("405.00")))
	assert.True(t, resumen.Totales.Volumen.Equal(dec("20.500")))
	assert.Equal(t, 4, resumen.Totales.Transacciones)
	assert.Len(t, resumen.PorBomba, 10)
}

// El total del día debe coincidir con la suma de los turnos y con la suma
// de las bombas dentro de cada turno: tres caminos de agrupamiento sobre
// los mismos datos.
func TestConsistenciaDeAgrupamientos(t *testing.T) {
	transacciones := transaccionesDePrueba()
	const maxBombas = 10

	resumen := GenerarResumenDia(transacciones, maxBombas)

	sumaTurnos := decimal.Zero
	sumaBombasPorTurno := decimal.Zero
	for _, numeroTurno := range []int{1, 2} {
		turno := TotalizarTurno(transacciones, numeroTurno, numeroTurno, maxBombas)
		sumaTurnos = sumaTurnos.Add(turno.Totales.Monto)

		for _, bomba := range turno.PorBomba {
			sumaBombasPorTurno = sumaBombasPorTurno.Add(bomba.Monto)
		}
	}

	assert.True(t, resumen.Totales.Monto.Equal(sumaTurnos))
	assert.True(t, resumen.Totales.Monto.Equal(sumaBombasPorTurno))
}

// Totalizar dos veces la misma lista da el mismo resultado y no toca la
// entrada.
func TestTotalizacionEsPura(t *testing.T) {
	transacciones := transaccionesDePrueba()

	primera := GenerarResumenDia(transacciones, 10)
	segunda := GenerarResumenDia(transacciones, 10)

	assert.True(t, primera.Totales.Monto.Equal(segunda.Totales.Monto))
	assert.True(t, primera.Totales.Volumen.Equal(segunda.Totales.Volumen))
	assert.Equal(t, primera.Totales.Transacciones, segunda.Totales.Transacciones)

	assert.True(t, transacciones[0].Total.Equal(dec("100.00")))
}

func TestResumenDiaVacio(t *testing.T) {
	resumen := GenerarResumenDia(nil, 3)

	assert.True(t, resumen.Totales.Monto.IsZero())
	assert.True(t, resumen.Totales.Volumen.IsZero())
	assert.Zero(t, resumen.Totales.Transacciones)
	require.Len(t, resumen.PorBomba, 3)
	for _, bomba := range resumen.PorBomba {
		assert.True(t, bomba.Monto.IsZero())
	}
}
