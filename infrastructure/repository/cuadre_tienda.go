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
	cuadresTiendaTable = "cuadres_tienda"
)

// CuadreTiendaRepository persiste los cuadres manuales de la tienda de
// conveniencia, uno por (fecha, turno DIA/NOCHE).
type CuadreTiendaRepository interface {
	Upsert(ctx context.Context, cuadre *domain.CuadreTienda) error
	GetByFecha(ctx context.Context, fecha time.Time) ([]*domain.CuadreTienda, error)
}

type cuadreTiendaRepository struct {
	conn *postgres.Connection
}

func NewCuadreTiendaRepository(conn *postgres.Connection) CuadreTiendaRepository {
	return &cuadreTiendaRepository{
		conn: conn,
	}
}

func (r *cuadreTiendaRepository) Upsert(ctx context.Context, cuadre *domain.CuadreTienda) error {
	query := squirrel.StatementBuilder.
		Insert(cuadresTiendaTable).
		Columns(
			"fecha", "turno", "horario_inicio", "horario_fin",
			"depositos", "remanente", "visanet", "credomatic", "cheques",
			"cupones", "versatec", "caja_chica", "ventas_hugo_app", "pedidos_ya",
			"uber_eats", "promociones", "faltantes", "anticipos",
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
			cuadre.Conceptos.Cheques,
			cuadre.Conceptos.Cupones,
			cuadre.Conceptos.Versatec,
			cuadre.Conceptos.CajaChica,
			cuadre.Conceptos.VentasHugoApp,
			cuadre.Conceptos.PedidosYa,
			cuadre.Conceptos.UberEats,
			cuadre.Conceptos.Promociones,
			cuadre.Conceptos.Faltantes,
			cuadre.Conceptos.Anticipos,
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
				cheques = EXCLUDED.cheques,
				cupones = EXCLUDED.cupones,
				versatec = EXCLUDED.versatec,
				caja_chica = EXCLUDED.caja_chica,
				ventas_hugo_app = EXCLUDED.ventas_hugo_app,
				pedidos_ya = EXCLUDED.pedidos_ya,
				uber_eats = EXCLUDED.uber_eats,
				promociones = EXCLUDED.promociones,
				faltantes = EXCLUDED.faltantes,
				anticipos = EXCLUDED.anticipos,
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

func (r *cuadreTiendaRepository) GetByFecha(ctx context.Context, fecha time.Time) ([]*domain.CuadreTienda, error) {
	query, args, err := squirrel.
		Select(
			"id", "fecha", "turno", "horario_inicio", "horario_fin",
			"depositos", "remanente", "visanet", "credomatic", "cheques",
			"cupones", "versatec", "caja_chica", "ventas_hugo_app", "pedidos_ya",
			"uber_eats", "promociones", "faltantes", "anticipos",
			"total_manual", "total_sistema", "diferencia", "usuario",
			"created_at", "updated_at",
		).
		From(cuadresTiendaTable).
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

	cuadres := make([]*domain.CuadreTienda, 0)
	for rows.Next() {
		cuadre := &domain.CuadreTienda{}

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
			&cuadre.Conceptos.Cheques,
			&cuadre.Conceptos.Cupones,
			&cuadre.Conceptos.Versatec,
			&cuadre.Conceptos.CajaChica,
			&cuadre.Conceptos.VentasHugoApp,
			&cuadre.Conceptos.PedidosYa,
			&cuadre.Conceptos.UberEats,
			&cuadre.Conceptos.Promociones,
			&cuadre.Conceptos.Faltantes,
			&cuadre.Conceptos.Anticipos,
			&cuadre.TotalManual,
			&cuadre.TotalSistema,
			&cuadre.Diferencia,
			&cuadre.Usuario,
			&cuadre.CreatedAt,
			&cuadre.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error escaneando cuadre de tienda: %w", err)
		}

		cuadres = append(cuadres, cuadre)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error durante la iteración de filas: %w", err)
	}

	return cuadres, nil
}
