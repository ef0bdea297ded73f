package authz

import (
	"github.com/jhoicas/Mayorista-api/internal/domain"
	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
	"github.com/jhoicas/Mayorista-api/internal/domain/repository"
)

// Policy decide si una identidad puede operar sobre un recurso. Las decisiones
// se toman SIEMPRE contra el estado actual del store, no contra los claims del
// token: un token sigue siendo válido hasta su expiración natural aunque la
// cuenta se desactive, así que el flag activo se reconsulta en cada operación
// privilegiada.
type Policy struct {
	userRepo       repository.UserRepository
	wholesalerRepo repository.WholesalerRepository
	mappingRepo    repository.MappingRepository
}

// NewPolicy construye la política de acceso.
func NewPolicy(userRepo repository.UserRepository, wholesalerRepo repository.WholesalerRepository, mappingRepo repository.MappingRepository) *Policy {
	return &Policy{userRepo: userRepo, wholesalerRepo: wholesalerRepo, mappingRepo: mappingRepo}
}

// AuthorizeProductWrite permite escribir el catálogo de wholesalerID solo al
// mayorista dueño, con cuenta activa.
// Devuelve ErrNotFound si el mayorista no existe, ErrNotOwner si el actor no
// es su dueño (o no es mayorista) y ErrInactiveAccount si la cuenta del actor
// está desactivada.
func (p *Policy) AuthorizeProductWrite(actorUserID, wholesalerID string) error {
	w, err := p.wholesalerRepo.GetByID(wholesalerID)
	if err != nil {
		return err
	}
	if w == nil {
		return domain.ErrNotFound
	}
	if w.UserID != actorUserID {
		return domain.ErrNotOwner
	}
	actor, err := p.userRepo.GetByID(actorUserID)
	if err != nil {
		return err
	}
	if actor == nil || actor.Role != entity.RoleWholesaler {
		return domain.ErrNotOwner
	}
	if !actor.IsActive {
		return domain.ErrInactiveAccount
	}
	return nil
}

// AuthorizeCatalogRead permite a un LOCAL_SELLER leer el catálogo de un
// mayorista solo si existe una suscripción APPROVED entre ambos. Cualquier
// otro estado, o la ausencia de mapping, devuelve ErrNotSubscribed. Los roles
// sin restricción de suscripción pasan sin chequeo (el gating aplica solo al
// listado por mayorista, no al browsing público).
// El resultado no se cachea: se reevalúa en cada lectura.
func (p *Policy) AuthorizeCatalogRead(actorRole, localSellerID, wholesalerID string) error {
	if actorRole != entity.RoleLocalSeller {
		return nil
	}
	mappings, err := p.mappingRepo.FindByLocalSellerAndStatus(localSellerID, entity.MappingApproved)
	if err != nil {
		return err
	}
	for _, m := range mappings {
		if m.WholesalerID == wholesalerID {
			return nil
		}
	}
	return domain.ErrNotSubscribed
}
