package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mayorista-api/internal/application/auth"
	"github.com/jhoicas/Mayorista-api/internal/application/usecase"
	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ProductUC *usecase.ProductUseCase
	ExportUC  *usecase.CatalogExportUseCase
	SellerUC  *usecase.LocalSellerUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	sellerHandler := NewSellerHandler(deps.SellerUC)

	// Browsing de mayoristas activos (público, sin gating de suscripción)
	api.Get("/wholesalers", sellerHandler.ListWholesalers)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo del mayorista (protegido, solo WHOLESALER; la propiedad la
	// verifica la política contra el store, no el token)
	productHandler := NewProductHandler(deps.ProductUC, deps.ExportUC)
	catalog := protected.Group("/wholesalers/:wholesalerId/products", RequireRole(entity.RoleWholesaler))
	catalog.Post("/", productHandler.Create)
	catalog.Get("/", productHandler.List)
	catalog.Get("/categories", productHandler.Categories)
	catalog.Get("/export", productHandler.ExportPDF)

	products := protected.Group("/products")
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", RequireRole(entity.RoleWholesaler), productHandler.Update)
	products.Patch("/:id/status", RequireRole(entity.RoleWholesaler), productHandler.ToggleStatus)
	products.Delete("/:id", RequireRole(entity.RoleWholesaler), productHandler.Delete)

	// Vistas del vendedor local (protegido, solo LOCAL_SELLER)
	seller := protected.Group("/seller", RequireRole(entity.RoleLocalSeller))
	seller.Get("/wholesalers", sellerHandler.SubscribedWholesalers)
	seller.Get("/wholesalers/:wholesalerId/products", sellerHandler.WholesalerProducts)
}
