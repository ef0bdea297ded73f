package repository

import "github.com/jhoicas/Mayorista-api/internal/domain/entity"

// Puertos de persistencia para los perfiles 1:1 de cada rol.

// WholesalerRepository acceso a perfiles de mayorista.
type WholesalerRepository interface {
	Create(w *entity.Wholesaler) error
	GetByID(id string) (*entity.Wholesaler, error)
	GetByUserID(userID string) (*entity.Wholesaler, error)
	ListActive() ([]*entity.Wholesaler, error)
}

// LocalSellerRepository acceso a perfiles de vendedor local.
type LocalSellerRepository interface {
	Create(s *entity.LocalSeller) error
	GetByID(id string) (*entity.LocalSeller, error)
	GetByUserID(userID string) (*entity.LocalSeller, error)
}

// SalesmanRepository acceso a perfiles de comercial.
type SalesmanRepository interface {
	Create(s *entity.Salesman) error
	GetByUserID(userID string) (*entity.Salesman, error)
}
