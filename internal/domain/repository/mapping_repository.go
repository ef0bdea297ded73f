package repository

import "github.com/jhoicas/Mayorista-api/internal/domain/entity"

// MappingRepository puerto de lectura de suscripciones mayorista ↔ vendedor local.
// Este núcleo nunca crea ni aprueba mappings, solo consulta su estado.
type MappingRepository interface {
	FindByLocalSellerAndStatus(localSellerID, status string) ([]*entity.SubscriptionMapping, error)
}
