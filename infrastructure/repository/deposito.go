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
	depositosTable = "depositos_bancarios"
)

type DepositoRepository interface {
	Save(ctx context.Context, deposito *domain.DepositoBancario) error
	GetByFecha(ctx context.Context, fecha time.Time) ([]*domain.DepositoBancario, error)
}

type depositoRepository struct {
	conn *postgres.Connection
}

func NewDepositoRepository(conn *postgres.Connection) DepositoRepository {
	return &depositoRepository{
		conn: conn,
	}
}

func (r *depositoRepository) Save(ctx context.Context, deposito *domain.DepositoBancario) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(depositosTable).
		Columns(
			"referencia", "fecha", "numero_boleta", "tipo", "turnos_incluidos",
			"monto_efectivo", "fecha_deposito", "observaciones", "usuario",
		).
		Values(
			deposito.Referencia,
			deposito.Fecha.Format(time.DateOnly),
			deposito.NumeroBoleta,
			deposito.Tipo,
			deposito.TurnosIncluidos,
			deposito.MontoEfectivo,
			deposito.FechaDeposito.Format(time.DateOnly),
			deposito.Observaciones,
			deposito.Usuario,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("error construyendo la query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	if err := row.Scan(&deposito.ID); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("error en la base de datos: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("error ejecutando la query: %w", err)
	}

	return nil
}

func (r *depositoRepository) GetByFecha(ctx context.Context, fecha time.Time) ([]*domain.DepositoBancario, error) {
	query, args, err := squirrel.
		Select(
			"id", "referencia", "fecha", "numero_boleta", "tipo",
			"turnos_incluidos", "monto_efectivo", "fecha_deposito",
			"observaciones", "usuario", "created_at",
		).
		From(depositosTable).
		Where(squirrel.Eq{"fecha": fecha.Format(time.DateOnly)}).
		OrderBy("tipo ASC").
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

	depositos := make([]*domain.DepositoBancario, 0)
	for rows.Next() {
		deposito := &domain.DepositoBancario{}

		err := rows.Scan(
			&deposito.ID,
			&deposito.Referencia,
			&deposito.Fecha,
			&deposito.NumeroBoleta,
			&deposito.Tipo,
			&deposito.TurnosIncluidos,
			&deposito.MontoEfectivo,
			&deposito.FechaDeposito,
			&deposito.Observaciones,
			&deposito.Usuario,
			&deposito.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error escaneando depósito: %w", err)
		}

		depositos = append(depositos, deposito)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return depositos, nil
}
