package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Mayorista-api/internal/application/authz"
	"github.com/jhoicas/Mayorista-api/internal/application/dto"
	"github.com/jhoicas/Mayorista-api/internal/domain"
	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
	"github.com/jhoicas/Mayorista-api/internal/domain/repository"
)

const defaultUnit = "piece"

// ProductUseCase casos de uso del catálogo de un mayorista: CRUD con borrado
// lógico, unicidad global de SKU y control de concurrencia por versión.
// Toda escritura pasa antes por la política de acceso.
type ProductUseCase struct {
	repo   repository.ProductRepository
	policy *authz.Policy
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, policy *authz.Policy) *ProductUseCase {
	return &ProductUseCase{repo: repo, policy: policy}
}

// Create crea un producto en el catálogo del mayorista. El SKU, si viene, debe
// ser único en TODO el catálogo, no por mayorista.
func (uc *ProductUseCase) Create(actorUserID, wholesalerID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := uc.policy.AuthorizeProductWrite(actorUserID, wholesalerID); err != nil {
		return nil, err
	}
	if err := validatePriceAndStock(in.Price, in.StockQuantity); err != nil {
		return nil, err
	}
	if in.SKUCode != "" {
		exists, err := uc.repo.ExistsBySKU(in.SKUCode)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateSKU
		}
	}
	unit := in.Unit
	if unit == "" {
		unit = defaultUnit
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		WholesalerID:  wholesalerID,
		Name:          in.Name,
		Description:   in.Description,
		Category:      in.Category,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		SKUCode:       in.SKUCode,
		Unit:          unit,
		ImageURL:      in.ImageURL,
		IsActive:      true,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID (también los inactivos: siguen siendo
// recuperables por id aunque no aparezcan en el listado por defecto).
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto del mayorista dueño. La escritura usa la
// versión que trae el request: si otra operación avanzó la versión entre la
// lectura del cliente y esta escritura, se devuelve ErrConcurrentModification
// en lugar de sobrescribir en silencio.
func (uc *ProductUseCase) Update(actorUserID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.policy.AuthorizeProductWrite(actorUserID, product.WholesalerID); err != nil {
		return nil, err
	}
	if in.Version <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.SKUCode != nil && *in.SKUCode != "" && *in.SKUCode != product.SKUCode {
		other, err := uc.repo.FindBySKUExcludingID(*in.SKUCode, id)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicateSKU
		}
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.StockQuantity != nil {
		product.StockQuantity = *in.StockQuantity
	}
	if in.SKUCode != nil {
		product.SKUCode = *in.SKUCode
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if err := validatePriceAndStock(product.Price, product.StockQuantity); err != nil {
		return nil, err
	}
	product.Version = in.Version
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	product.Version = in.Version + 1
	return toProductResponse(product), nil
}

// List lista el catálogo de un mayorista con filtros conjuntivos, paginación y
// ordenamiento. Un campo de ordenamiento desconocido es error, no fallback.
// Por defecto solo se ven productos activos; activeOnly=false los incluye todos.
func (uc *ProductUseCase) List(wholesalerID string, filter repository.ProductFilter, page, size int, sortBy, sortDir string) (*dto.ProductPageResponse, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	if size > 100 {
		size = 100
	}
	if sortBy == "" {
		sortBy = "name"
	}
	column, ok := repository.ProductSortFields[sortBy]
	if !ok {
		return nil, domain.ErrInvalidSortField
	}
	dir := "asc"
	if strings.EqualFold(sortDir, "desc") {
		dir = "desc"
	}
	if filter.Active == nil {
		active := true
		filter.Active = &active
	}

	items, total, err := uc.repo.List(wholesalerID, filter, repository.PageRequest{
		Page:    page,
		Size:    size,
		SortBy:  column,
		SortDir: dir,
	})
	if err != nil {
		return nil, err
	}
	products := make([]dto.ProductResponse, 0, len(items))
	for _, p := range items {
		products = append(products, *toProductResponse(p))
	}
	totalPages := int((total + int64(size) - 1) / int64(size))
	return &dto.ProductPageResponse{
		Products:    products,
		CurrentPage: page,
		TotalItems:  total,
		TotalPages:  totalPages,
	}, nil
}

// Categories devuelve las categorías distintas presentes entre los productos
// activos del mayorista, sin duplicados ni categorías vacías.
func (uc *ProductUseCase) Categories(wholesalerID string) ([]string, error) {
	return uc.repo.DistinctCategories(wholesalerID)
}

// ToggleStatus activa o desactiva un producto (desactivar -> sale del listado
// por defecto pero sigue recuperable por id).
func (uc *ProductUseCase) ToggleStatus(actorUserID, id string, status bool) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.policy.AuthorizeProductWrite(actorUserID, product.WholesalerID); err != nil {
		return nil, err
	}
	if err := uc.repo.SetActive(id, status); err != nil {
		return nil, err
	}
	product.IsActive = status
	product.UpdatedAt = time.Now()
	return toProductResponse(product), nil
}

// Delete es un borrado lógico: marca el producto inactivo sin eliminar la
// fila. Es idempotente: borrar un producto ya inactivo también es éxito.
func (uc *ProductUseCase) Delete(actorUserID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.policy.AuthorizeProductWrite(actorUserID, product.WholesalerID); err != nil {
		return err
	}
	return uc.repo.SetActive(id, false)
}

func validatePriceAndStock(price decimal.Decimal, stock int) error {
	if !price.IsPositive() {
		return domain.ErrInvalidInput
	}
	if stock < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		WholesalerID:  p.WholesalerID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Price:         p.Price,
		StockQuantity: p.StockQuantity,
		SKUCode:       p.SKUCode,
		Unit:          p.Unit,
		ImageURL:      p.ImageURL,
		IsActive:      p.IsActive,
		Version:       p.Version,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
