package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
	"github.com/jhoicas/Mayorista-api/internal/domain/repository"
)

var _ repository.SalesmanRepository = (*SalesmanRepo)(nil)

// SalesmanRepo implementación del puerto SalesmanRepository sobre PostgreSQL (usable con pool o tx).
type SalesmanRepo struct {
	q Querier
}

// NewSalesmanRepository construye el adaptador de persistencia para comerciales.
func NewSalesmanRepository(q Querier) *SalesmanRepo {
	return &SalesmanRepo{q: q}
}

// Create persiste un nuevo perfil de comercial.
func (r *SalesmanRepo) Create(s *entity.Salesman) error {
	query := `
		INSERT INTO salesmen (id, user_id, wholesaler_id, region)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query, s.ID, s.UserID, s.WholesalerID, s.Region)
	if err != nil {
		return storeErr("insert salesman", err)
	}
	return nil
}

// GetByUserID obtiene el perfil de comercial de un usuario (relación 1:1).
func (r *SalesmanRepo) GetByUserID(userID string) (*entity.Salesman, error) {
	var s entity.Salesman
	err := r.q.QueryRow(context.Background(),
		`SELECT id, user_id, wholesaler_id, region FROM salesmen WHERE user_id = $1`, userID,
	).Scan(&s.ID, &s.UserID, &s.WholesalerID, &s.Region)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get salesman by user", err)
	}
	return &s, nil
}
