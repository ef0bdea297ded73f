package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Mayorista-api/internal/application/auth"
	"github.com/jhoicas/Mayorista-api/internal/domain/repository"
)

var _ auth.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL. El registro
// usa esto para persistir usuario y perfil de rol como unidad atómica.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	users repository.UserRepository,
	wholesalers repository.WholesalerRepository,
	sellers repository.LocalSellerRepository,
	salesmen repository.SalesmanRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return storeErr("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	users := NewUserRepository(tx)
	wholesalers := NewWholesalerRepository(tx)
	sellers := NewLocalSellerRepository(tx)
	salesmen := NewSalesmanRepository(tx)

	if err := fn(users, wholesalers, sellers, salesmen); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return storeErr("commit transaction", err)
	}
	return nil
}
