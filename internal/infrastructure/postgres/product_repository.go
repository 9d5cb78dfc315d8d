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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo guarda cada producto como un documento JSONB.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste el documento con un UUID nuevo.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	doc, err := json.Marshal(product.Fields)
	if err != nil {
		return fmt.Errorf("serializar producto: %w", err)
	}
	id := uuid.New().String()
	if _, err := r.q.Exec(ctx, `INSERT INTO products (id, doc) VALUES ($1, $2::jsonb)`, id, string(doc)); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	product.ID = id
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	pid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var raw []byte
	err = r.q.QueryRow(ctx, `SELECT doc FROM products WHERE id = $1`, pid).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return decodeProduct(pid, raw)
}

// List devuelve todos los productos en orden de creación.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT id::text, doc FROM products ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p, err := decodeProduct(id, raw)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Merge combina las claves de primer nivel (jsonb ||), equivalente a $set.
func (r *ProductRepo) Merge(ctx context.Context, id string, fields map[string]interface{}) (int64, error) {
	pid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	patch, err := json.Marshal(fields)
	if err != nil {
		return 0, fmt.Errorf("serializar cambios: %w", err)
	}
	cmd, err := r.q.Exec(ctx, `UPDATE products SET doc = doc || $2::jsonb WHERE id = $1`, pid, string(patch))
	if err != nil {
		return 0, fmt.Errorf("update product: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) (int64, error) {
	pid, err := parseID(id)
	if err != nil {
		return 0, err
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, pid)
	if err != nil {
		return 0, fmt.Errorf("delete product: %w", err)
	}
	return cmd.RowsAffected(), nil
}

func decodeProduct(id string, raw []byte) (*entity.Product, error) {
	fields := map[string]interface{}{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("decodificar producto %s: %w", id, err)
		}
	}
	return &entity.Product{ID: id, Fields: fields}, nil
}
