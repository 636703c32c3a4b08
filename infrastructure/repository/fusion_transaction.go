package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/estacionsb/cuadres-api/infrastructure/database/postgres"
	"github.com/estacionsb/cuadres-api/internal/domain"
)

const (
	fusionTransactionsTable = "fusion_transactions"
)

// FusionTransactionRepository persiste las transacciones del export Fusion.
// La clave natural (fecha, bomba, manguera, correlativo, id_turno_fusion)
// tiene restricción de unicidad: reprocesar el mismo archivo no duplica
// datos, las filas repetidas simplemente se descartan.
type FusionTransactionRepository interface {
	SaveAll(ctx context.Context, transacciones []domain.FusionTransaction) (int64, error)
	GetByFecha(ctx context.Context, fecha time.Time) ([]domain.FusionTransaction, error)
	TotalesPorTurno(ctx context.Context, fecha time.Time) (map[int]decimal.Decimal, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type fusionTransactionRepository struct {
	conn *postgres.Connection
}

func NewFusionTransactionRepository(conn *postgres.Connection) FusionTransactionRepository {
	return &fusionTransactionRepository{
		conn: conn,
	}
}

func (r *fusionTransactionRepository) SaveAll(ctx context.Context, transacciones []domain.FusionTransaction) (int64, error) {
	if len(transacciones) == 0 {
		return 0, nil
	}

	builder := squirrel.StatementBuilder.
		Insert(fusionTransactionsTable).
		Columns(
			"fecha", "id_turno_fusion", "numero_turno", "bomba", "manguera",
			"combustible", "modo_servicio", "volumen", "total", "precio_unitario",
			"tipo_pago", "hora", "correlativo", "estado",
		)

	for _, t := range transacciones {
		builder = builder.Values(
			t.Fecha,
			t.IDTurnoFusion,
			t.NumeroTurno,
			t.Bomba,
			t.Manguera,
			t.Combustible,
			string(t.ModoServicio),
			t.Volumen,
			t.Total,
			t.PrecioUnitario,
			t.TipoPago,
			t.Hora,
			t.Correlativo,
			t.Estado,
		)
	}

	query, args, err := builder.
		Suffix(`ON CONFLICT (fecha, bomba, manguera, correlativo, id_turno_fusion) DO NOTHING`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error construyendo la query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("error en la base de datos: %w (código: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("error ejecutando la query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error obteniendo filas afectadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *fusionTransactionRepository) GetByFecha(ctx context.Context, fecha time.Time) ([]domain.FusionTransaction, error) {
	query, args, err := squirrel.
		Select(
			"id", "fecha", "id_turno_fusion", "numero_turno", "bomba", "manguera",
			"combustible", "modo_servicio", "volumen", "total", "precio_unitario",
			"tipo_pago", "hora", "correlativo", "estado",
		).
		From(fusionTransactionsTable).
		Where(squirrel.Eq{"fecha": fecha.Format(time.DateOnly)}).
		OrderBy("numero_turno ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error construyendo la query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error ejecutando la query: %w", err)
	}
	defer rows.Close()

	transacciones := make([]domain.FusionTransaction, 0)
	for rows.Next() {
		var t domain.FusionTransaction
		var modo string

		err := rows.Scan(
			&t.ID,
			&t.Fecha,
			&t.IDTurnoFusion,
			&t.NumeroTurno,
			&t.Bomba,
			&t.Manguera,
			&t.Combustible,
			&modo,
			&t.Volumen,
			&t.Total,
			&t.PrecioUnitario,
			&t.TipoPago,
			&t.Hora,
			&t.Correlativo,
			&t.Estado,
		)
		if err != nil {
			return nil, fmt.Errorf("error escaneando transacción: %w", err)
		}

		t.ModoServicio = domain.ModoServicio(modo)
		transacciones = append(transacciones, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return transacciones, nil
}

// TotalesPorTurno devuelve el monto total del sistema por número de turno
// para la fecha indicada. Es el total contra el que se cuadra el efectivo.
func (r *fusionTransactionRepository) TotalesPorTurno(ctx context.Context, fecha time.Time) (map[int]decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("numero_turno", "COALESCE(SUM(total), 0)").
		From(fusionTransactionsTable).
		Where(squirrel.Eq{"fecha": fecha.Format(time.DateOnly)}).
		GroupBy("numero_turno").
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

	totales := make(map[int]decimal.Decimal)
	for rows.Next() {
		var turno int
		var total decimal.Decimal

		if err := rows.Scan(&turno, &total); err != nil {
			return nil, fmt.Errorf("error escaneando totales por turno: %w", err)
		}

		totales[turno] = total
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return totales, nil
}

func (r *fusionTransactionRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete(fusionTransactionsTable).
		Where(squirrel.Lt{"fecha": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error construyendo la query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("error ejecutando la query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error obteniendo filas afectadas: %w", err)
	}

	return rowsAffected, nil
}
