package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jhoicas/ronix-api/internal/application/dto"
	"github.com/jhoicas/ronix-api/internal/domain"
	"github.com/jhoicas/ronix-api/internal/domain/entity"
	"github.com/jhoicas/ronix-api/internal/domain/repository"
)

// AccountUseCase alta de cuentas y cambio de rol.
type AccountUseCase struct {
	repo repository.UserRepository
}

// NewAccountUseCase construye el caso de uso con el puerto de persistencia.
func NewAccountUseCase(repo repository.UserRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

// CreateAccount registra un usuario nuevo. El email se compara y guarda en minúsculas;
// si ya existe devuelve domain.ErrAlreadyExists.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, in dto.CreateAccountRequest) error {
	email := lower(in.Email)
	if email == "" {
		return domain.ErrInvalidInput
	}
	existing, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("buscar usuario: %w", err)
	}
	if existing != nil {
		return domain.ErrAlreadyExists
	}

	role := entity.RoleUser
	if in.Role != "" {
		role = lower(in.Role)
	}
	user := &entity.User{
		Email:          email,
		Role:           role,
		ProfilePicture: in.ProfilePicture,
		CreatedAt:      time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return err
		}
		return fmt.Errorf("crear usuario: %w", err)
	}
	return nil
}

// PromoteUser asigna el rol (admin si viene vacío). No verifica que el usuario exista:
// cero coincidencias no es un error.
func (uc *AccountUseCase) PromoteUser(ctx context.Context, in dto.PromoteUserRequest) error {
	email := lower(in.Email)
	if email == "" {
		return domain.ErrInvalidInput
	}
	role := entity.RoleAdmin
	if in.Role != "" {
		role = lower(in.Role)
	}
	if _, err := uc.repo.UpdateRole(ctx, email, role); err != nil {
		return fmt.Errorf("actualizar rol: %w", err)
	}
	return nil
}

// lower normaliza a minúsculas con reglas Unicode. cases.Caser no es seguro entre
// goroutines, por eso se construye en cada llamada.
func lower(s string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(s))
}
