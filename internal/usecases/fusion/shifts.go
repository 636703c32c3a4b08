package fusion

import (
	"sort"

	"github.com/estacionsb/cuadres-api/internal/domain"
)

// AsignarTurnos numera los turnos del día a partir de los IDs de sesión que
// asigna el Fusion. Los IDs distintos se ordenan en forma ascendente y se
// numeran 1..K en ese orden, no en orden de aparición: así la numeración no
// depende del orden de filas del export.
//
// Devuelve una copia de la lista con NumeroTurno poblado y el mapeo
// idFusion -> numeroTurno. Un archivo con una sola sesión produce un único
// turno (número 1); una lista vacía no produce turnos.
func AsignarTurnos(transacciones []domain.FusionTransaction) ([]domain.FusionTransaction, map[int]int) {
	vistos := make(map[int]bool)
	ids := make([]int, 0)
	for _, t := range transacciones {
		if !vistos[t.IDTurnoFusion] {
			vistos[t.IDTurnoFusion] = true
			ids = append(ids, t.IDTurnoFusion)
		}
	}
	sort.Ints(ids)

	mapeo := make(map[int]int, len(ids))
	for i, id := range ids {
		mapeo[id] = i + 1
	}

	asignadas := make([]domain.FusionTransaction, len(transacciones))
	for i, t := range transacciones {
		t.NumeroTurno = mapeo[t.IDTurnoFusion]
		asignadas[i] = t
	}

	return asignadas, mapeo
}
