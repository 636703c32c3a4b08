package deposito

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/estacionsb/cuadres-api/infrastructure/repository/mocks"
	"github.com/estacionsb/cuadres-api/internal/domain"
)

func TestGuardarDepositos(t *testing.T) {
	fecha := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("Asigna referencia y fecha a cada boleta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		depositoRepo := mocks.NewMockDepositoRepository(ctrl)
		servicio := NewService(depositoRepo)

		depositoRepo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(2)

		depositos := []*domain.DepositoBancario{
			{NumeroBoleta: "B-4410", Tipo: "estacion", MontoEfectivo: decimal.RequireFromString("1500.00")},
			{NumeroBoleta: "B-4411", Tipo: "tienda", MontoEfectivo: decimal.RequireFromString("320.00")},
		}

		guardados, err := servicio.GuardarDepositos(context.Background(), fecha, depositos)

		require.NoError(t, err)
		require.Len(t, guardados, 2)

		assert.NotEmpty(t, guardados[0].Referencia)
		assert.NotEmpty(t, guardados[1].Referencia)
		assert.NotEqual(t, guardados[0].Referencia, guardados[1].Referencia)
		assert.Equal(t, fecha, guardados[0].Fecha)
		assert.Equal(t, fecha, guardados[1].Fecha)
	})

	t.Run("El error del repositorio corta el lote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		depositoRepo := mocks.NewMockDepositoRepository(ctrl)
		servicio := NewService(depositoRepo)

		depositoRepo.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			Return(errors.New("boleta duplicada"))

		depositos := []*domain.DepositoBancario{
			{NumeroBoleta: "B-4410", Tipo: "estacion"},
		}

		guardados, err := servicio.GuardarDepositos(context.Background(), fecha, depositos)

		assert.Nil(t, guardados)
		assert.ErrorContains(t, err, "B-4410")
	})
}
