package usecase

import (
	"github.com/jhoicas/Mayorista-api/internal/domain"
	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
	"github.com/jhoicas/Mayorista-api/internal/domain/repository"
)

// catalogExportPageSize tope de filas en el PDF; un catálogo mayor se trunca.
const catalogExportPageSize = 500

// CatalogPDFGenerator puerto de generación del PDF del catálogo.
// Lo implementa infrastructure/pdf con Maroto.
type CatalogPDFGenerator interface {
	GenerateCatalogPDF(w *entity.Wholesaler, products []*entity.Product) ([]byte, error)
}

// CatalogExportUseCase exporta el catálogo activo de un mayorista como PDF.
type CatalogExportUseCase struct {
	wholesalerRepo repository.WholesalerRepository
	productRepo    repository.ProductRepository
	generator      CatalogPDFGenerator
}

// NewCatalogExportUseCase construye el caso de uso.
func NewCatalogExportUseCase(wholesalerRepo repository.WholesalerRepository, productRepo repository.ProductRepository, generator CatalogPDFGenerator) *CatalogExportUseCase {
	return &CatalogExportUseCase{wholesalerRepo: wholesalerRepo, productRepo: productRepo, generator: generator}
}

// Export genera el PDF con los productos activos del mayorista, ordenados por nombre.
func (uc *CatalogExportUseCase) Export(wholesalerID string) ([]byte, error) {
	w, err := uc.wholesalerRepo.GetByID(wholesalerID)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	active := true
	products, _, err := uc.productRepo.List(wholesalerID,
		repository.ProductFilter{Active: &active},
		repository.PageRequest{Page: 0, Size: catalogExportPageSize, SortBy: "name", SortDir: "asc"},
	)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateCatalogPDF(w, products)
}
