package fusion

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/estacionsb/cuadres-api/infrastructure/repository/mocks"
	"github.com/estacionsb/cuadres-api/internal/config"
)

const encabezadoFusion = `Fecha de inicio,Id Turno Fusion,Bomba,Manguera,Combustible,Modo Servicio,Volumen,Total,Precio Unitario,Tipo Pago,Hora de fin,Correlativo,Estado`

func archivoFusion(filas ...string) string {
	return encabezadoFusion + "\n" + strings.Join(filas, "\n") + "\n"
}

func servicioDePrueba(t *testing.T) (FusionService, *mocks.MockFusionTransactionRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	transactionRepo := mocks.NewMockFusionTransactionRepository(ctrl)

	cfg := &config.Config{Fusion: config.Fusion{MaxBombas: 10}}

	return NewService(transactionRepo, cfg), transactionRepo
}

func TestTotalizar(t *testing.T) {
	t.Run("Dos sesiones en la misma bomba producen dos turnos ordenados", func(t *testing.T) {
		servicio, _ := servicioDePrueba(t)

		contenido := archivoFusion(
			`2024-03-15 06:45:12,501,1,2,Regular,FULL,2.500,10.00,4.00,EFECTIVO,06:47:01,F-1001,CERRADA`,
			`2024-03-15 05:10:33,203,1,2,Regular,FULL,5.000,20.00,4.00,EFECTIVO,05:12:40,F-0950,CERRADA`,
		)

		resultado, err := servicio.Totalizar(contenido)

		require.NoError(t, err)
		require.Len(t, resultado.Turnos, 2)

		// La numeración sigue el id de sesión ascendente, no el orden del
		// archivo: 203 abre el día aunque aparezca segundo.
		assert.Equal(t, 1, resultado.Turnos[0].NumeroTurno)
		assert.Equal(t, 203, resultado.Turnos[0].IDFusion)
		assert.Equal(t, 2, resultado.Turnos[1].NumeroTurno)
		assert.Equal(t, 501, resultado.Turnos[1].IDFusion)

		assert.True(t, resultado.Turnos[0].Totales.Monto.Equal(dec("20.00")))
		assert.True(t, resultado.Turnos[1].Totales.Monto.Equal(dec("10.00")))

		assert.True(t, resultado.ResumenDia.Totales.Monto.Equal(dec("30.00")))
		assert.True(t, resultado.ResumenDia.PorBomba[1].Monto.Equal(dec("30.00")))
		assert.True(t, resultado.ResumenDia.PorBomba[2].Monto.IsZero())

		require.NotNil(t, resultado.Fecha)
		assert.Equal(t, "2024-03-15", resultado.Fecha.Format("2006-01-02"))
	})

	t.Run("Un modo de servicio desconocido aborta la totalización", func(t *testing.T) {
		servicio, _ := servicioDePrueba(t)

		contenido := archivoFusion(
			`2024-03-15 06:45:12,501,1,2,Regular,FULL,2.500,10.00,4.00,EFECTIVO,06:47:01,F-1001,CERRADA`,
			`2024-03-15 07:02:09,501,1,2,Regular,HYBRID,1.000,4.00,4.00,EFECTIVO,07:03:15,F-1002,CERRADA`,
		)

		resultado, err := servicio.Totalizar(contenido)

		assert.Nil(t, resultado)

		var errModo *ErrorModoServicio
		require.ErrorAs(t, err, &errModo)
		assert.Equal(t, "HYBRID", errModo.Valor)
		assert.Equal(t, 2, errModo.Fila)
	})

	t.Run("Un campo vacío se reporta con su nombre y valor", func(t *testing.T) {
		servicio, _ := servicioDePrueba(t)

		contenido := archivoFusion(
			`2024-03-15 06:45:12,501,1,2,Regular,FULL,,10.00,4.00,EFECTIVO,06:47:01,F-1001,CERRADA`,
		)

		_, err := servicio.Totalizar(contenido)

		var errCampo *ErrorCampo
		require.ErrorAs(t, err, &errCampo)
		assert.Equal(t, "Volumen", errCampo.Campo)
		assert.Equal(t, "", errCampo.Valor)
		assert.Equal(t, 1, errCampo.Fila)
	})

	t.Run("Archivo vacío", func(t *testing.T) {
		servicio, _ := servicioDePrueba(t)

		_, err := servicio.Totalizar("")

		assert.ErrorIs(t, err, ErrSinEncabezado)
	})

	t.Run("Archivo solo con encabezado produce un día en cero", func(t *testing.T) {
		servicio, _ := servicioDePrueba(t)

		resultado, err := servicio.Totalizar(encabezadoFusion + "\n")

		require.NoError(t, err)
		assert.Empty(t, resultado.Transacciones)
		assert.Empty(t, resultado.Turnos)
		assert.Nil(t, resultado.Fecha)
		assert.True(t, resultado.ResumenDia.Totales.Monto.IsZero())
	})
}

func TestProcesarArchivo(t *testing.T) {
	contenido := archivoFusion(
		`2024-03-15 06:45:12,501,1,2,Regular,FULL,2.500,10.00,4.00,EFECTIVO,06:47:01,F-1001,CERRADA`,
		`2024-03-15 05:10:33,203,1,2,Regular,FULL,5.000,20.00,4.00,EFECTIVO,05:12:40,F-0950,CERRADA`,
	)

	t.Run("Totaliza y persiste las transacciones", func(t *testing.T) {
		servicio, transactionRepo := servicioDePrueba(t)

		transactionRepo.EXPECT().
			SaveAll(gomock.Any(), gomock.Len(2)).
			Return(int64(2), nil)

		resultado, err := servicio.ProcesarArchivo(context.Background(), contenido)

		require.NoError(t, err)
		assert.Equal(t, int64(2), resultado.TransaccionesGuardadas)
		assert.Len(t, resultado.Turnos, 2)
		assert.True(t, resultado.ResumenDia.Totales.Monto.Equal(dec("30.00")))
	})

	t.Run("Las transacciones repetidas no se cuentan como guardadas", func(t *testing.T) {
		servicio, transactionRepo := servicioDePrueba(t)

		// El repositorio descarta las dos filas por la llave natural.
		transactionRepo.EXPECT().
			SaveAll(gomock.Any(), gomock.Len(2)).
			Return(int64(0), nil)

		resultado, err := servicio.ProcesarArchivo(context.Background(), contenido)

		require.NoError(t, err)
		assert.Zero(t, resultado.TransaccionesGuardadas)
	})

	t.Run("Un archivo inválido no llega al repositorio", func(t *testing.T) {
		servicio, _ := servicioDePrueba(t)

		malformado := archivoFusion(
			`2024-03-15 06:45:12,501,1,2,Regular,HYBRID,2.500,10.00,4.00,EFECTIVO,06:47:01,F-1001,CERRADA`,
		)

		resultado, err := servicio.ProcesarArchivo(context.Background(), malformado)

		assert.Nil(t, resultado)

		var errModo *ErrorModoServicio
		assert.ErrorAs(t, err, &errModo)
	})

	t.Run("El error del repositorio se propaga", func(t *testing.T) {
		servicio, transactionRepo := servicioDePrueba(t)

		transactionRepo.EXPECT().
			SaveAll(gomock.Any(), gomock.Any()).
			Return(int64(0), errors.New("conexión rechazada"))

		resultado, err := servicio.ProcesarArchivo(context.Background(), contenido)

		assert.Nil(t, resultado)
		assert.ErrorContains(t, err, "conexión rechazada")
	})
}
