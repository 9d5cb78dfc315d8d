package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/ronix-api/internal/application/dto"
	"github.com/jhoicas/ronix-api/internal/domain"
	"github.com/jhoicas/ronix-api/internal/domain/entity"
	"github.com/jhoicas/ronix-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo de documentos libres.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Add guarda el documento tal cual (sin _id) y devuelve el ID asignado.
func (uc *ProductUseCase) Add(ctx context.Context, in dto.ProductDocument) (string, error) {
	product := &entity.Product{Fields: entity.StripID(in)}
	if err := uc.repo.Create(ctx, product); err != nil {
		return "", fmt.Errorf("insertar producto: %w", err)
	}
	return product.ID, nil
}

// GetByID obtiene un producto; domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (dto.ProductDocument, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product.Document(), nil
}

// List devuelve todo el catálogo, sin filtros ni paginación.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductDocument, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	items := make([]dto.ProductDocument, 0, len(list))
	for _, p := range list {
		items = append(items, p.Document())
	}
	return items, nil
}

// Update mezcla los campos recibidos sobre el producto existente. Las claves que no
// vienen en la petición conservan su valor.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductDocument) error {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	fields := entity.StripID(in)
	if len(fields) == 0 {
		return nil
	}
	if _, err := uc.repo.Merge(ctx, id, fields); err != nil {
		return fmt.Errorf("actualizar producto: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID sin verificar existencia.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("eliminar producto: %w", err)
	}
	return nil
}
