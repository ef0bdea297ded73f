package repository

import "github.com/jhoicas/Mayorista-api/internal/domain/entity"

// ProductFilter filtros opcionales para listar productos. Los predicados
// presentes se combinan con AND; el struct no conoce tipos de persistencia
// para que los casos de uso sean testeables sin un store real.
type ProductFilter struct {
	Category *string // igualdad case-insensitive
	Search   string  // substring case-insensitive sobre name, description y sku_code
	Active   *bool   // nil = sin filtro; el caso de uso aplica true por defecto
}

// PageRequest paginación y ordenamiento de un listado.
type PageRequest struct {
	Page    int    // índice de página, base 0
	Size    int    // tamaño de página
	SortBy  string // columna ya validada contra ProductSortFields
	SortDir string // "asc" | "desc"
}

// ProductSortFields mapea los nombres de campo que acepta la API a columnas
// reales. Un campo fuera de esta lista es un error, nunca un fallback.
var ProductSortFields = map[string]string{
	"name":          "name",
	"price":         "price",
	"category":      "category",
	"stockQuantity": "stock_quantity",
	"skuCode":       "sku_code",
	"createdAt":     "created_at",
	"updatedAt":     "updated_at",
}

// ProductRepository puerto de persistencia para el catálogo.
// Los métodos de búsqueda devuelven (nil, nil) cuando no hay fila.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// Update aplica la escritura solo si la versión persistida coincide con
	// product.Version; devuelve domain.ErrConcurrentModification si no.
	Update(product *entity.Product) error
	// SetActive cambia el flag activo sin chequeo de versión (idempotente).
	SetActive(id string, active bool) error
	List(wholesalerID string, filter ProductFilter, page PageRequest) ([]*entity.Product, int64, error)
	DistinctCategories(wholesalerID string) ([]string, error)
	ExistsBySKU(sku string) (bool, error)
	FindBySKUExcludingID(sku, id string) (*entity.Product, error)
}
