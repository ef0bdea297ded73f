package postgres

import (
	"context"

	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
	"github.com/jhoicas/Mayorista-api/internal/domain/repository"
)

var _ repository.MappingRepository = (*MappingRepo)(nil)

// MappingRepo implementación del puerto MappingRepository sobre PostgreSQL.
// Solo lectura: el ciclo de vida de las suscripciones lo manejan otros flujos.
type MappingRepo struct {
	q Querier
}

// NewMappingRepository construye el adaptador de persistencia para suscripciones.
func NewMappingRepository(q Querier) *MappingRepo {
	return &MappingRepo{q: q}
}

// FindByLocalSellerAndStatus lista los mappings de un vendedor local con el estado dado.
func (r *MappingRepo) FindByLocalSellerAndStatus(localSellerID, status string) ([]*entity.SubscriptionMapping, error) {
	query := `
		SELECT id, wholesaler_id, local_seller_id, status
		FROM wholesaler_seller_mappings
		WHERE local_seller_id = $1 AND status = $2`
	rows, err := r.q.Query(context.Background(), query, localSellerID, status)
	if err != nil {
		return nil, storeErr("list mappings", err)
	}
	defer rows.Close()
	var list []*entity.SubscriptionMapping
	for rows.Next() {
		var m entity.SubscriptionMapping
		if err := rows.Scan(&m.ID, &m.WholesalerID, &m.LocalSellerID, &m.Status); err != nil {
			return nil, storeErr("scan mapping", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
