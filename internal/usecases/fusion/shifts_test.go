package fusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estacionsb/cuadres-api/internal/domain"
)

func TestAsignarTurnos(t *testing.T) {
	t.Run("Los IDs se numeran en orden ascendente, no de aparición", func(t *testing.T) {
		transacciones := []domain.FusionTransaction{
			{IDTurnoFusion: 501},
			{IDTurnoFusion: 203},
			{IDTurnoFusion: 501},
		}

		asignadas, mapeo := AsignarTurnos(transacciones)

		assert.Equal(t, map[int]int{203: 1, 501: 2}, mapeo)
		require.Len(t, asignadas, 3)
		assert.Equal(t, 2, asignadas[0].NumeroTurno)
		assert.Equal(t, 1, asignadas[1].NumeroTurno)
		assert.Equal(t, 2, asignadas[2].NumeroTurno)
	})

	t.Run("La numeración es estable ante reordenamiento de filas", func(t *testing.T) {
		original := []domain.FusionTransaction{
			{IDTurnoFusion: 910},
			{IDTurnoFusion: 100},
			{IDTurnoFusion: 455},
		}
		invertido := []domain.FusionTransaction{
			{IDTurnoFusion: 455},
			{IDTurnoFusion: 100},
			{IDTurnoFusion: 910},
		}

		_, mapeoOriginal := AsignarTurnos(original)
		_, mapeoInvertido := AsignarTurnos(invertido)

		assert.Equal(t, mapeoOriginal, mapeoInvertido)
		assert.Equal(t, map[int]int{100: 1, 455: 2, 910: 3}, mapeoOriginal)
	})

	t.Run("Una sola sesión produce un único turno", func(t *testing.T) {
		transacciones := []domain.FusionTransaction{
			{IDTurnoFusion: 42},
			{IDTurnoFusion: 42},
		}

		asignadas, mapeo := AsignarTurnos(transacciones)

		assert.Equal(t, map[int]int{42: 1}, mapeo)
		for _, tr := range asignadas {
			assert.Equal(t, 1, tr.NumeroTurno)
		}
	})

	t.Run("Lista vacía no produce turnos", func(t *testing.T) {
		asignadas, mapeo := AsignarTurnos(nil)

		assert.Empty(t, asignadas)
		assert.Empty(t, mapeo)
	})

	t.Run("La lista original no se modifica", func(t *testing.T) {
		transacciones := []domain.FusionTransaction{
			{IDTurnoFusion: 501},
			{IDTurnoFusion: 203},
		}

		asignadas, _ := AsignarTurnos(transacciones)

		assert.Zero(t, transacciones[0].NumeroTurno)
		assert.Zero(t, transacciones[1].NumeroTurno)
		assert.NotZero(t, asignadas[0].NumeroTurno)
	})
}
