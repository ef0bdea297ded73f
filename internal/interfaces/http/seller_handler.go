package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mayorista-api/internal/application/dto"
	"github.com/jhoicas/Mayorista-api/internal/application/usecase"
)

// SellerHandler vistas del vendedor local: mayoristas y catálogos suscriptos.
type SellerHandler struct {
	uc *usecase.LocalSellerUseCase
}

// NewSellerHandler construye el handler.
func NewSellerHandler(uc *usecase.LocalSellerUseCase) *SellerHandler {
	return &SellerHandler{uc: uc}
}

// ListWholesalers godoc
// @Summary      Listar mayoristas activos (browsing, sin suscripción)
// @Tags         wholesalers
// @Produce      json
// @Success      200  {array}  dto.WholesalerResponse
// @Router       /api/wholesalers [get]
func (h *SellerHandler) ListWholesalers(c *fiber.Ctx) error {
	out, err := h.uc.ActiveWholesalers()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SubscribedWholesalers godoc
// @Summary      Listar mayoristas con suscripción aprobada del vendedor local
// @Tags         seller
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.WholesalerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/seller/wholesalers [get]
func (h *SellerHandler) SubscribedWholesalers(c *fiber.Ctx) error {
	out, err := h.uc.SubscribedWholesalers(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// WholesalerProducts godoc
// @Summary      Catálogo activo de un mayorista suscripto (paginado)
// @Tags         seller
// @Security     Bearer
// @Produce      json
// @Param        wholesalerId  path   string  true   "ID del mayorista"
// @Param        page          query  int     false  "Página (base 0)"  default(0)
// @Param        size          query  int     false  "Tamaño de página"  default(10)
// @Success      200  {object}  dto.ProductPageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/seller/wholesalers/{wholesalerId}/products [get]
func (h *SellerHandler) WholesalerProducts(c *fiber.Ctx) error {
	wholesalerID := c.Params("wholesalerId")
	if wholesalerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "wholesalerId es requerido"})
	}
	out, err := h.uc.ProductsOfWholesaler(GetUserID(c), GetRole(c), wholesalerID,
		c.QueryInt("page", 0), c.QueryInt("size", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
