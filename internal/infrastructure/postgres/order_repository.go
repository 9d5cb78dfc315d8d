package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ronix-api/internal/domain/entity"
	"github.com/jhoicas/ronix-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id::text, email, items, status, total, created_at, updated_at`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste la orden con un UUID nuevo.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("serializar líneas: %w", err)
	}
	id := uuid.New().String()
	_, err = r.q.Exec(ctx, `
		INSERT INTO orders (id, email, items, status, total, created_at, updated_at)
		VALUES ($1, $2, $3::jsonb, $4, $5, $6, $7)`,
		id, order.Email, string(items), order.Status, order.Total, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	order.ID = id
	return nil
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return r.scanOne(r.q.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, oid))
}

// FirstByEmail devuelve la orden más antigua del email.
func (r *OrderRepo) FirstByEmail(ctx context.Context, email string) (*entity.Order, error) {
	return r.scanOne(r.q.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE email = $1 ORDER BY created_at, id LIMIT 1`, email))
}

func (r *OrderRepo) scanOne(row pgx.Row) (*entity.Order, error) {
	o, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// List devuelve todas las órdenes.
func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// UpdateStatus filtra por email + id y devuelve las filas afectadas.
func (r *OrderRepo) UpdateStatus(ctx context.Context, email, id, status string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	cmd, err := r.q.Exec(ctx,
		`UPDATE orders SET status = $3, updated_at = now() WHERE email = $1 AND id = $2`,
		email, oid, status,
	)
	if err != nil {
		return 0, fmt.Errorf("update order status: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// DeleteUnpaid elimina una orden por ID salvo que esté pagada.
func (r *OrderRepo) DeleteUnpaid(ctx context.Context, id string) (int64, error) {
	oid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM orders WHERE id = $1 AND status <> $2`, oid, entity.OrderStatusPaid)
	if err != nil {
		return 0, fmt.Errorf("delete order: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var o entity.Order
	var items []byte
	if err := row.Scan(&o.ID, &o.Email, &items, &o.Status, &o.Total, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, err
	}
	o.Items = []interface{}{}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("decodificar líneas de la orden %s: %w", o.ID, err)
		}
	}
	return &o, nil
}
