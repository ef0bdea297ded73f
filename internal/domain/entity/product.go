package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de un mayorista.
// El borrado es lógico (IsActive=false, la fila nunca se elimina) y las
// escrituras concurrentes se detectan con el contador Version.
type Product struct {
	ID            string
	WholesalerID  string
	Name          string
	Description   string
	Category      string
	Price         decimal.Decimal // siempre positivo
	StockQuantity int             // >= 0
	SKUCode       string          // único en todo el catálogo cuando no está vacío
	Unit          string
	ImageURL      string
	IsActive      bool
	Version       int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
