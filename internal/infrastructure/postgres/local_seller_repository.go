package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
	"github.com/jhoicas/Mayorista-api/internal/domain/repository"
)

var _ repository.LocalSellerRepository = (*LocalSellerRepo)(nil)

// LocalSellerRepo implementación del puerto LocalSellerRepository sobre PostgreSQL (usable con pool o tx).
type LocalSellerRepo struct {
	q Querier
}

// NewLocalSellerRepository construye el adaptador de persistencia para vendedores locales.
func NewLocalSellerRepository(q Querier) *LocalSellerRepo {
	return &LocalSellerRepo{q: q}
}

const localSellerColumns = `id, user_id, shop_name, address, latitude, longitude`

// Create persiste un nuevo perfil de vendedor local.
func (r *LocalSellerRepo) Create(s *entity.LocalSeller) error {
	query := `
		INSERT INTO local_sellers (id, user_id, shop_name, address, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.UserID, s.ShopName, s.Address, s.Latitude, s.Longitude,
	)
	if err != nil {
		return storeErr("insert local seller", err)
	}
	return nil
}

// GetByID obtiene un vendedor local por ID.
func (r *LocalSellerRepo) GetByID(id string) (*entity.LocalSeller, error) {
	return r.scanOne(`SELECT `+localSellerColumns+` FROM local_sellers WHERE id = $1`, "get local seller", id)
}

// GetByUserID obtiene el perfil de vendedor local de un usuario (relación 1:1).
func (r *LocalSellerRepo) GetByUserID(userID string) (*entity.LocalSeller, error) {
	return r.scanOne(`SELECT `+localSellerColumns+` FROM local_sellers WHERE user_id = $1`, "get local seller by user", userID)
}

func (r *LocalSellerRepo) scanOne(query, op string, args ...any) (*entity.LocalSeller, error) {
	var s entity.LocalSeller
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&s.ID, &s.UserID, &s.ShopName, &s.Address, &s.Latitude, &s.Longitude,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr(op, err)
	}
	return &s, nil
}
