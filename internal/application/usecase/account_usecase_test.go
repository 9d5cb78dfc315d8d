package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ronix-api/internal/application/dto"
	"github.com/jhoicas/ronix-api/internal/application/usecase"
	"github.com/jhoicas/ronix-api/internal/domain"
	"github.com/jhoicas/ronix-api/internal/domain/entity"
)

func TestCreateAccount_NormalizaEmailYRolPorDefecto(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("FindByEmail", mock.Anything, "ana@x.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "ana@x.com" && u.Role == entity.RoleUser && u.ProfilePicture == "pic.png"
	})).Return(nil)

	uc := usecase.NewAccountUseCase(repo)
	err := uc.CreateAccount(context.Background(), dto.CreateAccountRequest{Email: "  Ana@X.com", ProfilePicture: "pic.png"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestCreateAccount_RolEnMinusculas(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("FindByEmail", mock.Anything, "b@x.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Role == "seller"
	})).Return(nil)

	uc := usecase.NewAccountUseCase(repo)
	require.NoError(t, uc.CreateAccount(context.Background(), dto.CreateAccountRequest{Email: "b@x.com", Role: "SeLLer"}))
	repo.AssertExpectations(t)
}

// Un email existente (sin importar mayúsculas) nunca genera un segundo registro.
func TestCreateAccount_EmailExistenteEsConflicto(t *testing.T) {
	for _, email := range []string{"a@x.com", "A@X.COM", "a@X.com"} {
		repo := new(mockUserRepo)
		repo.On("FindByEmail", mock.Anything, "a@x.com").Return(&entity.User{Email: "a@x.com"}, nil)

		uc := usecase.NewAccountUseCase(repo)
		err := uc.CreateAccount(context.Background(), dto.CreateAccountRequest{Email: email})

		assert.ErrorIs(t, err, domain.ErrAlreadyExists, email)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	}
}

// Carrera: dos altas simultáneas, el índice único del store rechaza la segunda.
func TestCreateAccount_DuplicadoDelStoreEsConflicto(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrAlreadyExists)

	err := usecase.NewAccountUseCase(repo).CreateAccount(context.Background(), dto.CreateAccountRequest{Email: "a@x.com"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestCreateAccount_ErrorDeStore(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, errors.New("timeout"))

	err := usecase.NewAccountUseCase(repo).CreateAccount(context.Background(), dto.CreateAccountRequest{Email: "a@x.com"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestPromoteUser_RolResultante(t *testing.T) {
	cases := []struct {
		name string
		role string
		want string
	}{
		{"sin rol → admin", "", entity.RoleAdmin},
		{"rol en mayúsculas", "EDITOR", "editor"},
		{"rol user", "user", "user"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(mockUserRepo)
			repo.On("UpdateRole", mock.Anything, "a@x.com", tc.want).Return(int64(1), nil)

			err := usecase.NewAccountUseCase(repo).PromoteUser(context.Background(), dto.PromoteUserRequest{Email: "A@x.com", Role: tc.role})
			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestPromoteUser_SinCoincidenciasNoEsError(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("UpdateRole", mock.Anything, "ghost@x.com", entity.RoleAdmin).Return(int64(0), nil)

	err := usecase.NewAccountUseCase(repo).PromoteUser(context.Background(), dto.PromoteUserRequest{Email: "ghost@x.com"})
	assert.NoError(t, err)
}

func TestEmailEnBlancoEsEntradaInvalida(t *testing.T) {
	for _, email := range []string{"   ", "\t\n"} {
		repo := new(mockUserRepo)
		uc := usecase.NewAccountUseCase(repo)

		err := uc.CreateAccount(context.Background(), dto.CreateAccountRequest{Email: email})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		err = uc.PromoteUser(context.Background(), dto.PromoteUserRequest{Email: email})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)

		repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "UpdateRole", mock.Anything, mock.Anything, mock.Anything)
	}
}
