package deposito

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/estacionsb/cuadres-api/infrastructure/repository"
	"github.com/estacionsb/cuadres-api/internal/domain"
	"github.com/estacionsb/cuadres-api/pkg/utils"
)

type DepositoService interface {
	GuardarDepositos(ctx context.Context, fecha time.Time, depositos []*domain.DepositoBancario) ([]*domain.DepositoBancario, error)
	ObtenerDepositos(ctx context.Context, fecha time.Time) ([]*domain.DepositoBancario, error)
}

type Service struct {
	depositoRepo repository.DepositoRepository
}

func NewService(depositoRepo repository.DepositoRepository) DepositoService {
	return &Service{
		depositoRepo: depositoRepo,
	}
}

// GuardarDepositos registra las boletas de depósito del día. A cada boleta
// se le asigna una referencia corta generada acá; el monto se registra tal
// cual viene, el cruce contra los cuadres no es responsabilidad del sistema.
func (s *Service) GuardarDepositos(ctx context.Context, fecha time.Time, depositos []*domain.DepositoBancario) ([]*domain.DepositoBancario, error) {
	for _, deposito := range depositos {
		referencia, err := utils.GenerateID()
		if err != nil {
			return nil, errors.Wrap(err, "error generando referencia de depósito")
		}

		deposito.Referencia = referencia
		deposito.Fecha = fecha

		if err := s.depositoRepo.Save(ctx, deposito); err != nil {
			return nil, errors.Wrapf(err, "error guardando depósito con boleta %s", deposito.NumeroBoleta)
		}
	}

	logrus.WithFields(logrus.Fields{
		"fecha":     fecha.Format(time.DateOnly),
		"depositos": len(depositos),
	}).Info("Depósitos bancarios guardados")

	return depositos, nil
}

func (s *Service) ObtenerDepositos(ctx context.Context, fecha time.Time) ([]*domain.DepositoBancario, error) {
	return s.depositoRepo.GetByFecha(ctx, fecha)
}
