package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
	"github.com/jhoicas/Mayorista-api/internal/domain/repository"
)

var _ repository.WholesalerRepository = (*WholesalerRepo)(nil)

// WholesalerRepo implementación del puerto WholesalerRepository sobre PostgreSQL (usable con pool o tx).
type WholesalerRepo struct {
	q Querier
}

// NewWholesalerRepository construye el adaptador de persistencia para mayoristas.
func NewWholesalerRepository(q Querier) *WholesalerRepo {
	return &WholesalerRepo{q: q}
}

const wholesalerColumns = `id, user_id, business_name, address, gst_number, is_active`

// Create persiste un nuevo perfil de mayorista.
func (r *WholesalerRepo) Create(w *entity.Wholesaler) error {
	query := `
		INSERT INTO wholesalers (id, user_id, business_name, address, gst_number, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		w.ID, w.UserID, w.BusinessName, w.Address, w.GSTNumber, w.IsActive,
	)
	if err != nil {
		return storeErr("insert wholesaler", err)
	}
	return nil
}

// GetByID obtiene un mayorista por ID.
func (r *WholesalerRepo) GetByID(id string) (*entity.Wholesaler, error) {
	return r.scanOne(`SELECT `+wholesalerColumns+` FROM wholesalers WHERE id = $1`, "get wholesaler", id)
}

// GetByUserID obtiene el perfil de mayorista de un usuario (relación 1:1).
func (r *WholesalerRepo) GetByUserID(userID string) (*entity.Wholesaler, error) {
	return r.scanOne(`SELECT `+wholesalerColumns+` FROM wholesalers WHERE user_id = $1`, "get wholesaler by user", userID)
}

// ListActive lista los mayoristas activos.
func (r *WholesalerRepo) ListActive() ([]*entity.Wholesaler, error) {
	query := `SELECT ` + wholesalerColumns + ` FROM wholesalers WHERE is_active = true ORDER BY business_name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, storeErr("list active wholesalers", err)
	}
	defer rows.Close()
	var list []*entity.Wholesaler
	for rows.Next() {
		var w entity.Wholesaler
		if err := rows.Scan(&w.ID, &w.UserID, &w.BusinessName, &w.Address, &w.GSTNumber, &w.IsActive); err != nil {
			return nil, storeErr("scan wholesaler", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

func (r *WholesalerRepo) scanOne(query, op string, args ...any) (*entity.Wholesaler, error) {
	var w entity.Wholesaler
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&w.ID, &w.UserID, &w.BusinessName, &w.Address, &w.GSTNumber, &w.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr(op, err)
	}
	return &w, nil
}
