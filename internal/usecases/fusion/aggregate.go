package fusion

import (
	"github.com/shopspring/decimal"

	"github.com/estacionsb/cuadres-api/internal/domain"
)

// TotalizarPorTipoServicio filtra las transacciones del modo indicado y
// suma volumen y monto, con desglose por combustible. Un conjunto vacío
// produce totales en cero, nunca un error.
func TotalizarPorTipoServicio(transacciones []domain.FusionTransaction, modo domain.ModoServicio) domain.TotalizacionDetallada {
	volumen := decimal.Zero
	monto := decimal.Zero
	cuenta := 0
	porProducto := make(map[string]domain.TotalesProducto)

	for _, t := range transacciones {
		if t.ModoServicio != modo {
			continue
		}

		volumen = volumen.Add(t.Volumen)
		monto = monto.Add(t.Total)
		cuenta++

		p := porProducto[t.Combustible]
		p.Volumen = p.Volumen.Add(t.Volumen)
		p.Monto = p.Monto.Add(t.Total)
		porProducto[t.Combustible] = p
	}

	return domain.TotalizacionDetallada{
		Volumen:       volumen,
		Monto:         monto,
		Transacciones: cuenta,
		PorProducto:   porProducto,
	}
}

// TotalizarPorBomba produce una entrada por CADA bomba de la flota
// (1..maxBombas), incluso las que no registraron transacciones: las vistas
// de cuadre muestran siempre la flota completa.
func TotalizarPorBomba(transacciones []domain.FusionTransaction, maxBombas int) map[int]domain.TotalizacionBomba {
	porBomba := make(map[int]domain.TotalizacionBomba, maxBombas)

	for numBomba := 1; numBomba <= maxBombas; numBomba++ {
		volumen := decimal.Zero
		monto := decimal.Zero
		servicioCompleto := decimal.Zero
		autoservicio := decimal.Zero
		cuenta := 0
		porProducto := make(map[string]domain.TotalesProducto)

		for _, t := range transacciones {
			if t.Bomba != numBomba {
				continue
			}

			volumen = volumen.Add(t.Volumen)
			monto = monto.Add(t.Total)
			cuenta++

			switch t.ModoServicio {
			case domain.ServicioFull:
				servicioCompleto = servicioCompleto.Add(t.Total)
			case domain.ServicioSelf:
				autoservicio = autoservicio.Add(t.Total)
			}

			p := porProducto[t.Combustible]
			p.Volumen = p.Volumen.Add(t.Volumen)
			p.Monto = p.Monto.Add(t.Total)
			porProducto[t.Combustible] = p
		}

		porBomba[numBomba] = domain.TotalizacionBomba{
			Bomba:            numBomba,
			Volumen:          volumen,
			Monto:            monto,
			Transacciones:    cuenta,
			ServicioCompleto: servicioCompleto,
			Autoservicio:     autoservicio,
			PorProducto:      porProducto,
		}
	}

	return porBomba
}

// TotalizarTurno filtra la lista completa al turno indicado y arma la vista
// del turno: ambos modos de servicio, todas las bombas y los totales
// directos del turno. Los totales directos se calculan sobre el filtrado,
// no sumando los agregados anidados, aunque ambos caminos deben coincidir.
func TotalizarTurno(transacciones []domain.FusionTransaction, numeroTurno, idFusion, maxBombas int) domain.TotalizacionTurno {
	delTurno := make([]domain.FusionTransaction, 0)
	for _, t := range transacciones {
		if t.NumeroTurno == numeroTurno {
			delTurno = append(delTurno, t)
		}
	}

	return domain.TotalizacionTurno{
		NumeroTurno: numeroTurno,
		IDFusion:    idFusion,
		PorTipoServicio: domain.TotalizacionPorTipoServicio{
			ServicioCompleto: TotalizarPorTipoServicio(delTurno, domain.ServicioFull),
			Autoservicio:     TotalizarPorTipoServicio(delTurno, domain.ServicioSelf),
		},
		PorBomba: TotalizarPorBomba(delTurno, maxBombas),
		Totales:  totalesDirectos(delTurno),
	}
}

// GenerarResumenDia aplica las mismas totalizaciones sobre el día completo,
// ignorando los turnos. Se calcula de forma independiente a los turnos, no
// sumándolos, aunque numéricamente deben coincidir.
func GenerarResumenDia(transacciones []domain.FusionTransaction, maxBombas int) domain.ResumenDia {
	return domain.ResumenDia{
		PorTipoServicio: domain.TotalizacionPorTipoServicio{
			ServicioCompleto: TotalizarPorTipoServicio(transacciones, domain.ServicioFull),
			Autoservicio:     TotalizarPorTipoServicio(transacciones, domain.ServicioSelf),
		},
		PorBomba: TotalizarPorBomba(transacciones, maxBombas),
		Totales:  totalesDirectos(transacciones),
	}
}

func totalesDirectos(transacciones []domain.FusionTransaction) domain.TotalesGlobales {
	volumen := decimal.Zero
	monto := decimal.Zero

	for _, t := range transacciones {
		volumen = volumen.Add(t.Volumen)
		monto = monto.Add(t.Total)
	}

	return domain.TotalesGlobales{
		Volumen:       volumen,
		Monto:         monto,
		Transacciones: len(transacciones),
	}
}
