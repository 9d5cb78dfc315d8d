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

func TestProductAdd_DescartaIDDelCaller(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Product) bool {
		_, hasID := p.Fields["_id"]
		return !hasID && p.Fields["name"] == "Drill"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Product).ID = "p1"
	}).Return(nil)

	id, err := usecase.NewProductUseCase(repo).Add(context.Background(), dto.ProductDocument{"_id": "hack", "name": "Drill"})
	require.NoError(t, err)
	assert.Equal(t, "p1", id)
}

func TestProductGetByID_NoExiste(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("GetByID", mock.Anything, "nope").Return(nil, nil)

	_, err := usecase.NewProductUseCase(repo).GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductGetByID_IncluyeID(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("GetByID", mock.Anything, "p1").Return(&entity.Product{ID: "p1", Fields: map[string]interface{}{"name": "Saw"}}, nil)

	doc, err := usecase.NewProductUseCase(repo).GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", doc["_id"])
	assert.Equal(t, "Saw", doc["name"])
}

func TestProductUpdate_NoExisteNoMezcla(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("GetByID", mock.Anything, "p9").Return(nil, nil)

	err := usecase.NewProductUseCase(repo).Update(context.Background(), "p9", dto.ProductDocument{"price": 10})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertNotCalled(t, "Merge", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductUpdate_SoloCamposEnviados(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("GetByID", mock.Anything, "p1").Return(&entity.Product{ID: "p1", Fields: map[string]interface{}{"name": "Saw", "price": 5}}, nil)
	repo.On("Merge", mock.Anything, "p1", map[string]interface{}{"price": 7}).Return(int64(1), nil)

	err := usecase.NewProductUseCase(repo).Update(context.Background(), "p1", dto.ProductDocument{"price": 7, "_id": "other"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestProductUpdate_IDInvalido(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("GetByID", mock.Anything, "zz").Return(nil, domain.ErrInvalidID)

	err := usecase.NewProductUseCase(repo).Update(context.Background(), "zz", dto.ProductDocument{"a": 1})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestProductList(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("List", mock.Anything).Return([]*entity.Product{
		{ID: "p1", Fields: map[string]interface{}{"name": "A"}},
		{ID: "p2", Fields: map[string]interface{}{"name": "B"}},
	}, nil)

	list, err := usecase.NewProductUseCase(repo).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p2", list[1]["_id"])
}

func TestProductDelete_ErrorDeStore(t *testing.T) {
	repo := new(mockProductRepo)
	repo.On("Delete", mock.Anything, "p1").Return(int64(0), errors.New("write concern"))

	err := usecase.NewProductUseCase(repo).Delete(context.Background(), "p1")
	assert.Error(t, err)
}
