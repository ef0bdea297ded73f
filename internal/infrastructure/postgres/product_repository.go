package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Mayorista-api/internal/domain"
	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
	"github.com/jhoicas/Mayorista-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, wholesaler_id, name, COALESCE(description, ''), COALESCE(category, ''), price, stock_quantity,
	COALESCE(sku_code, ''), unit, COALESCE(image_url, ''), is_active, version, created_at, updated_at`

// Columnas admitidas en ORDER BY. El caso de uso ya valida el campo, pero el
// repo nunca interpola un nombre de columna que no esté en esta lista.
var sortColumns = map[string]bool{
	"name":           true,
	"price":          true,
	"category":       true,
	"stock_quantity": true,
	"sku_code":       true,
	"created_at":     true,
	"updated_at":     true,
}

// Create persiste un nuevo producto. SKU vacío se guarda como NULL para no
// chocar con el constraint único global de sku_code.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, wholesaler_id, name, description, category, price, stock_quantity, sku_code, unit, image_url, is_active, version, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, NULLIF($8, ''), $9, NULLIF($10, ''), $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.WholesalerID, product.Name, product.Description, product.Category,
		product.Price, product.StockQuantity, product.SKUCode, product.Unit, product.ImageURL,
		product.IsActive, product.Version, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return storeErr("insert product", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (activo o no).
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.WholesalerID, &p.Name, &p.Description, &p.Category, &p.Price, &p.StockQuantity,
		&p.SKUCode, &p.Unit, &p.ImageURL, &p.IsActive, &p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get product", err)
	}
	return &p, nil
}

// Update aplica la escritura con bloqueo optimista: solo si la versión
// persistida coincide con product.Version. Cero filas afectadas con la fila
// existente significa que otra operación avanzó la versión.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $3, description = NULLIF($4, ''), category = NULLIF($5, ''), price = $6,
		    stock_quantity = $7, sku_code = NULLIF($8, ''), unit = $9, image_url = NULLIF($10, ''),
		    updated_at = $11, version = version + 1
		WHERE id = $1 AND version = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, product.Version, product.Name, product.Description, product.Category,
		product.Price, product.StockQuantity, product.SKUCode, product.Unit, product.ImageURL,
		product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSKU
		}
		return storeErr("update product", err)
	}
	if cmd.RowsAffected() == 0 {
		existing, err := r.GetByID(product.ID)
		if err != nil {
			return err
		}
		if existing == nil {
			return domain.ErrNotFound
		}
		return domain.ErrConcurrentModification
	}
	return nil
}

// SetActive cambia el flag activo sin chequeo de versión. Idempotente: fijar
// el mismo estado dos veces también es éxito.
func (r *ProductRepo) SetActive(id string, active bool) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET is_active = $2, updated_at = now(), version = version + 1 WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return storeErr("set product active", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos de un mayorista aplicando el filtro (AND de todos los
// predicados presentes) con paginación y ordenamiento. Devuelve también el
// total sin paginar para calcular páginas.
func (r *ProductRepo) List(wholesalerID string, filter repository.ProductFilter, page repository.PageRequest) ([]*entity.Product, int64, error) {
	if !sortColumns[page.SortBy] {
		return nil, 0, domain.ErrInvalidSortField
	}
	dir := "ASC"
	if strings.EqualFold(page.SortDir, "desc") {
		dir = "DESC"
	}

	conds := []string{"wholesaler_id = $1"}
	args := []any{wholesalerID}
	if filter.Category != nil {
		args = append(args, strings.ToLower(*filter.Category))
		conds = append(conds, fmt.Sprintf("LOWER(category) = $%d", len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		conds = append(conds, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+strings.ToLower(filter.Search)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(LOWER(name) LIKE $%d OR LOWER(description) LIKE $%d OR LOWER(sku_code) LIKE $%d)", n, n, n))
	}
	where := strings.Join(conds, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM products WHERE ` + where
	if err := r.q.QueryRow(context.Background(), countQuery, args...).Scan(&total); err != nil {
		return nil, 0, storeErr("count products", err)
	}

	args = append(args, page.Size, page.Page*page.Size)
	listQuery := fmt.Sprintf(`SELECT %s FROM products WHERE %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		productColumns, where, page.SortBy, dir, len(args)-1, len(args))
	rows, err := r.q.Query(context.Background(), listQuery, args...)
	if err != nil {
		return nil, 0, storeErr("list products", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.WholesalerID, &p.Name, &p.Description, &p.Category, &p.Price,
			&p.StockQuantity, &p.SKUCode, &p.Unit, &p.ImageURL, &p.IsActive, &p.Version,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, storeErr("scan product", err)
		}
		list = append(list, &p)
	}
	return list, total, rows.Err()
}

// DistinctCategories devuelve las categorías distintas entre productos activos
// del mayorista, sin NULL ni vacías.
func (r *ProductRepo) DistinctCategories(wholesalerID string) ([]string, error) {
	query := `
		SELECT DISTINCT category FROM products
		WHERE wholesaler_id = $1 AND is_active = true AND category IS NOT NULL AND category <> ''`
	rows, err := r.q.Query(context.Background(), query, wholesalerID)
	if err != nil {
		return nil, storeErr("distinct categories", err)
	}
	defer rows.Close()
	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, storeErr("scan category", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// ExistsBySKU verifica si el SKU ya existe en cualquier parte del catálogo.
func (r *ProductRepo) ExistsBySKU(sku string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS(SELECT 1 FROM products WHERE sku_code = $1)`, sku,
	).Scan(&exists)
	if err != nil {
		return false, storeErr("exists product by sku", err)
	}
	return exists, nil
}

// FindBySKUExcludingID busca el producto que tiene el SKU, ignorando id (para updates).
func (r *ProductRepo) FindBySKUExcludingID(sku, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku_code = $1 AND id <> $2`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, sku, id).Scan(
		&p.ID, &p.WholesalerID, &p.Name, &p.Description, &p.Category, &p.Price, &p.StockQuantity,
		&p.SKUCode, &p.Unit, &p.ImageURL, &p.IsActive, &p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storeErr("get product by sku", err)
	}
	return &p, nil
}
