package usecase

import (
	"github.com/jhoicas/Mayorista-api/internal/application/authz"
	"github.com/jhoicas/Mayorista-api/internal/application/dto"
	"github.com/jhoicas/Mayorista-api/internal/domain"
	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
	"github.com/jhoicas/Mayorista-api/internal/domain/repository"
)

// LocalSellerUseCase vistas del vendedor local sobre mayoristas y sus
// catálogos. El listado de mayoristas activos es browsing público; el catálogo
// de un mayorista concreto está condicionado a una suscripción APPROVED, que
// se reevalúa en cada lectura.
type LocalSellerUseCase struct {
	wholesalerRepo repository.WholesalerRepository
	sellerRepo     repository.LocalSellerRepository
	mappingRepo    repository.MappingRepository
	productRepo    repository.ProductRepository
	policy         *authz.Policy
}

// NewLocalSellerUseCase construye el caso de uso.
func NewLocalSellerUseCase(
	wholesalerRepo repository.WholesalerRepository,
	sellerRepo repository.LocalSellerRepository,
	mappingRepo repository.MappingRepository,
	productRepo repository.ProductRepository,
	policy *authz.Policy,
) *LocalSellerUseCase {
	return &LocalSellerUseCase{
		wholesalerRepo: wholesalerRepo,
		sellerRepo:     sellerRepo,
		mappingRepo:    mappingRepo,
		productRepo:    productRepo,
		policy:         policy,
	}
}

// ActiveWholesalers lista los mayoristas activos (sin gating de suscripción).
func (uc *LocalSellerUseCase) ActiveWholesalers() ([]dto.WholesalerResponse, error) {
	list, err := uc.wholesalerRepo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.WholesalerResponse, 0, len(list))
	for _, w := range list {
		out = append(out, toWholesalerResponse(w))
	}
	return out, nil
}

// SubscribedWholesalers lista solo los mayoristas con suscripción APPROVED
// para el vendedor local autenticado.
func (uc *LocalSellerUseCase) SubscribedWholesalers(actorUserID string) ([]dto.WholesalerResponse, error) {
	seller, err := uc.sellerRepo.GetByUserID(actorUserID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrNotFound
	}
	mappings, err := uc.mappingRepo.FindByLocalSellerAndStatus(seller.ID, entity.MappingApproved)
	if err != nil {
		return nil, err
	}
	out := make([]dto.WholesalerResponse, 0, len(mappings))
	for _, m := range mappings {
		w, err := uc.wholesalerRepo.GetByID(m.WholesalerID)
		if err != nil {
			return nil, err
		}
		if w != nil {
			out = append(out, toWholesalerResponse(w))
		}
	}
	return out, nil
}

// ProductsOfWholesaler lista paginado el catálogo activo de un mayorista para
// el vendedor local autenticado, previa verificación de suscripción.
func (uc *LocalSellerUseCase) ProductsOfWholesaler(actorUserID, actorRole, wholesalerID string, page, size int) (*dto.ProductPageResponse, error) {
	seller, err := uc.sellerRepo.GetByUserID(actorUserID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrNotFound
	}
	if err := uc.policy.AuthorizeCatalogRead(actorRole, seller.ID, wholesalerID); err != nil {
		return nil, err
	}
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	active := true
	items, total, err := uc.productRepo.List(wholesalerID,
		repository.ProductFilter{Active: &active},
		repository.PageRequest{Page: page, Size: size, SortBy: "name", SortDir: "asc"},
	)
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

func toWholesalerResponse(w *entity.Wholesaler) dto.WholesalerResponse {
	return dto.WholesalerResponse{
		ID:           w.ID,
		BusinessName: w.BusinessName,
		Address:      w.Address,
		GSTNumber:    w.GSTNumber,
		IsActive:     w.IsActive,
	}
}
