package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/estacionsb/cuadres-api/infrastructure/database/postgres"
	"github.com/estacionsb/cuadres-api/internal/domain"
)

const (
	cuadresEstacionTable = "cuadres_estacion"
)

// CuadreEstacionRepository persiste los cuadres manuales de la estación.
// Hay a lo sumo un cuadre por (fecha, turno); guardar de nuevo actualiza.
type CuadreEstacionRepository interface {
	Upsert(ctx context.Context, cuadre *domain.CuadreEstacion) error
	GetByFecha(ctx context.Context, fecha time.Time) ([]*domain.CuadreEstacion, error)
}

type cuadreEstacionRepository struct {
	conn *postgres.Connection
}

func NewCuadreEstacionRepository(conn *postgres.Connection) CuadreEstacionRepository {
	return &cuadreEstacionRepository{
		conn: conn,
	}
}

func (r *cuadreEstacionRepository) Upsert(ctx context.Context, cuadre *domain.CuadreEstacion) error {
	query := squirrel.StatementBuilder.
		Insert(cuadresEstacionTable).
		Columns(
			"fecha", "turno", "horario_inicio", "horario_fin",
			"depositos", "remanente", "visanet", "credomatic", "bac_flota",
			"versatec", "flota_uno", "cupones", "vales_prepago", "vales_diarios",
			"anticipos", "faltantes",
			"total_manual", "total_sistema", "diferencia", "usuario",
		).
		Values(
			cuadre.Fecha.Format(time.DateOnly),
			cuadre.Turno,
			cuadre.HorarioInicio,
			cuadre.HorarioFin,
			cuadre.Conceptos.Depositos,
			cuadre.Conceptos.Remanente,
			cuadre.Conceptos.Visanet,
			cuadre.Conceptos.Credomatic,
			cuadre.Conceptos.BacFlota,
			cuadre.Conceptos.Versatec,
			cuadre.Conceptos.FlotaUno,
			cuadre.Conceptos.Cupones,
			cuadre.Conceptos.ValesPrepago,
			cuadre.Conceptos.ValesDiarios,
			cuadre.Conceptos.Anticipos,
			cuadre.Conceptos.Faltantes,
			cuadre.TotalManual,
			cuadre.TotalSistema,
			cuadre.Diferencia,
			cuadre.Usuario,
		).
		Suffix(`
			ON CONFLICT (fecha, turno) DO UPDATE SET
				depositos = EXCLUDED.depositos,
				remanente = EXCLUDED.remanente,
				visanet = EXCLUDED.visanet,
				credomatic = EXCLUDED.credomatic,
				bac_flota = EXCLUDED.bac_flota,
				versatec = EXCLUDED.versatec,
				flota_uno = EXCLUDED.flota_uno,
				cupones = EXCLUDED.cupones,
				vales_prepago = EXCLUDED.vales_prepago,
				vales_diarios = EXCLUDED.vales_diarios,
				anticipos = EXCLUDED.anticipos,
				faltantes = EXCLUDED.faltantes,
				total_manual = EXCLUDED.total_manual,
				total_sistema = EXCLUDED.total_sistema,
				diferencia = EXCLUDED.diferencia,
				usuario = EXCLUDED.usuario,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error construyendo la query: %w", err)
	}

	_, err = r.conn.Exec(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("error en la base de datos: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error ejecutando la query: %w", err)
	}

	return nil
}

func (r *cuadreEstacionRepository) GetByFecha(ctx context.Context, fecha time.Time) ([]*domain.CuadreEstacion, error) {
	query, args, err := squirrel.
		Select(
			"id", "fecha", "turno", "horario_inicio", "horario_fin",
			"depositos", "remanente", "visanet", "credomatic", "bac_flota",
			"versatec", "flota_uno", "cupones", "vales_prepago", "vales_diarios",
			"anticipos", "faltantes",
			"total_manual", "total_sistema", "diferencia", "usuario",
			"created_at", "updated_at",
		).
		From(cuadresEstacionTable).
		Where(squirrel.Eq{"fecha": fecha.Format(time.DateOnly)}).
		OrderBy("turno ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error construyendo la query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error ejecutando la query: %w", err)
	}
	defer rows.Close()

	cuadres := make([]*domain.CuadreEstacion, 0)
	for rows.Next() {
		cuadre := &domain.CuadreEstacion{}

		err := rows.Scan(
			&cuadre.ID,
			&cuadre.Fecha,
			&cuadre.Turno,
			&cuadre.HorarioInicio,
			&cuadre.HorarioFin,
			&cuadre.Conceptos.Depositos,
			&cuadre.Conceptos.Remanente,
			&cuadre.Conceptos.Visanet,
			&cuadre.Conceptos.Credomatic,
			&cuadre.Conceptos.BacFlota,
			&cuadre.Conceptos.Versatec,
			&cuadre.Conceptos.FlotaUno,
			&cuadre.Conceptos.Cupones,
			&cuadre.Conceptos.ValesPrepago,
			&cuadre.Conceptos.ValesDiarios,
			&cuadre.Conceptos.Anticipos,
			&cuadre.Conceptos.Faltantes,
			&cuadre.TotalManual,
			&cuadre.TotalSistema,
			&cuadre.Diferencia,
			&cuadre.Usuario,
			&cuadre.CreatedAt,
			&cuadre.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error escaneando cuadre de estación: %w", err)
		}

		cuadres = append(cuadres, cuadre)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return cuadres, nil
}
