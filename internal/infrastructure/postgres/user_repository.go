package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ronix-api/internal/domain"
	"github.com/jhoicas/ronix-api/internal/domain/entity"
	"github.com/jhoicas/ronix-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un usuario; el UNIQUE de email se traduce a domain.ErrAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	id := uuid.New().String()
	_, err := r.q.Exec(ctx,
		`INSERT INTO users (id, email, role, profile_picture, created_at) VALUES ($1, $2, $3, $4, $5)`,
		id, user.Email, user.Role, user.ProfilePicture, user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = id
	return nil
}

// FindByEmail obtiene un usuario por email exacto.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	err := r.q.QueryRow(ctx,
		`SELECT id::text, email, role, profile_picture, created_at FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.Role, &u.ProfilePicture, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// UpdateRole asigna el rol y devuelve las filas afectadas.
func (r *UserRepo) UpdateRole(ctx context.Context, email, role string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE users SET role = $2 WHERE email = $1`, email, role)
	if err != nil {
		return 0, fmt.Errorf("update user role: %w", err)
	}
	return cmd.RowsAffected(), nil
}
