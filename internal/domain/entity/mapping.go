package entity

// Estados de una suscripción mayorista ↔ vendedor local.
// Solo APPROVED habilita la lectura del catálogo. El ciclo de vida del mapping
// (creación, aprobación) es externo: este núcleo solo lee el estado.
const (
	MappingPending  = "PENDING"
	MappingApproved = "APPROVED"
	MappingRejected = "REJECTED"
)

// SubscriptionMapping relación de aprobación entre un mayorista y un vendedor local.
type SubscriptionMapping struct {
	ID            string
	WholesalerID  string
	LocalSellerID string
	Status        string // PENDING, APPROVED, REJECTED
}
