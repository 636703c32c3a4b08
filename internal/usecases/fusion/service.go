package fusion

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/estacionsb/cuadres-api/infrastructure/repository"
	"github.com/estacionsb/cuadres-api/internal/config"
	"github.com/estacionsb/cuadres-api/internal/domain"
)

// ResultadoProcesamiento es la respuesta del procesamiento de un archivo:
// el resultado puro de la totalización más la cantidad de transacciones que
// realmente se guardaron (las repetidas se descartan en el repositorio).
type ResultadoProcesamiento struct {
	TransaccionesGuardadas int64                      `json:"transaccionesGuardadas"`
	Fecha                  *time.Time                 `json:"fecha"`
	Turnos                 []domain.TotalizacionTurno `json:"turnos"`
	ResumenDia             domain.ResumenDia          `json:"resumenDia"`
}

type FusionService interface {
	// Totalizar es el núcleo puro: texto crudo -> resultado estructurado.
	// No toca el repositorio y es seguro de invocar en forma concurrente.
	Totalizar(contenido string) (*domain.ResultadoFusion, error)

	// ProcesarArchivo totaliza y persiste las transacciones del archivo.
	ProcesarArchivo(ctx context.Context, contenido string) (*ResultadoProcesamiento, error)
}

type Service struct {
	transactionRepo repository.FusionTransactionRepository
	maxBombas       int
}

func NewService(transactionRepo repository.FusionTransactionRepository, cfg *config.Config) FusionService {
	return &Service{
		transactionRepo: transactionRepo,
		maxBombas:       cfg.Fusion.MaxBombas,
	}
}

func (s *Service) Totalizar(contenido string) (*domain.ResultadoFusion, error) {
	registros, err := ParseTabular(contenido)
	if err != nil {
		return nil, err
	}

	transacciones := make([]domain.FusionTransaction, 0, len(registros))
	for i, registro := range registros {
		transaccion, err := NormalizarRegistro(registro, i+1)
		if err != nil {
			return nil, err
		}
		transacciones = append(transacciones, transaccion)
	}

	transacciones, mapeo := AsignarTurnos(transacciones)

	turnos := make([]domain.TotalizacionTurno, 0, len(mapeo))
	for idFusion, numeroTurno := range mapeo {
		turnos = append(turnos, TotalizarTurno(transacciones, numeroTurno, idFusion, s.maxBombas))
	}
	sort.Slice(turnos, func(i, j int) bool {
		return turnos[i].NumeroTurno < turnos[j].NumeroTurno
	})

	// La fecha del archivo se infiere de la primera transacción. Si el
	// export mezclara fechas, acá no se detecta: la lista completa viaja en
	// el resultado y el que consume decide qué hacer con ese caso.
	var fecha *time.Time
	if len(transacciones) > 0 {
		f := transacciones[0].Fecha
		fecha = &f
	}

	return &domain.ResultadoFusion{
		Transacciones: transacciones,
		Fecha:         fecha,
		Turnos:        turnos,
		ResumenDia:    GenerarResumenDia(transacciones, s.maxBombas),
	}, nil
}

func (s *Service) ProcesarArchivo(ctx context.Context, contenido string) (*ResultadoProcesamiento, error) {
	resultado, err := s.Totalizar(contenido)
	if err != nil {
		return nil, err
	}

	guardadas, err := s.transactionRepo.SaveAll(ctx, resultado.Transacciones)
	if err != nil {
		return nil, errors.Wrap(err, "error guardando transacciones Fusion")
	}

	logrus.WithFields(logrus.Fields{
		"transacciones": len(resultado.Transacciones),
		"guardadas":     guardadas,
		"turnos":        len(resultado.Turnos),
	}).Info("Archivo Fusion procesado")

	return &ResultadoProcesamiento{
		TransaccionesGuardadas: guardadas,
		Fecha:                  resultado.Fecha,
		Turnos:                 resultado.Turnos,
		ResumenDia:             resultado.ResumenDia,
	}, nil
}
