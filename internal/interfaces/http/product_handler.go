package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Mayorista-api/internal/application/dto"
	"github.com/jhoicas/Mayorista-api/internal/application/usecase"
	"github.com/jhoicas/Mayorista-api/internal/domain/repository"
)

// ProductHandler maneja las peticiones HTTP del catálogo del mayorista (protegido).
type ProductHandler struct {
	uc       *usecase.ProductUseCase
	exportUC *usecase.CatalogExportUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, exportUC *usecase.CatalogExportUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, exportUC: exportUC}
}

// Create godoc
// @Summary      Crear producto en el catálogo del mayorista
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        wholesalerId  path  string  true  "ID del mayorista"
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/wholesalers/{wholesalerId}/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	wholesalerID := c.Params("wholesalerId")
	if wholesalerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "wholesalerId es requerido"})
	}
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(GetUserID(c), wholesalerID, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar el catálogo del mayorista con filtros, paginación y orden
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        wholesalerId  path   string  true   "ID del mayorista"
// @Param        category      query  string  false  "Filtro por categoría (case-insensitive)"
// @Param        search        query  string  false  "Búsqueda en nombre, descripción y SKU"
// @Param        active        query  bool    false  "Incluir inactivos con active=false"  default(true)
// @Param        page          query  int     false  "Página (base 0)"  default(0)
// @Param        size          query  int     false  "Tamaño de página"  default(10)
// @Param        sortBy        query  string  false  "name|price|category|stockQuantity|skuCode|createdAt|updatedAt"  default(name)
// @Param        sortDir       query  string  false  "asc|desc"  default(asc)
// @Success      200  {object}  dto.ProductPageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/wholesalers/{wholesalerId}/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	wholesalerID := c.Params("wholesalerId")
	if wholesalerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "wholesalerId es requerido"})
	}
	var filter repository.ProductFilter
	if cat := c.Query("category"); cat != "" {
		filter.Category = &cat
	}
	filter.Search = c.Query("search")
	if c.Query("active") != "" {
		active := c.QueryBool("active", true)
		filter.Active = &active
	}
	out, err := h.uc.List(wholesalerID, filter,
		c.QueryInt("page", 0), c.QueryInt("size", 10),
		c.Query("sortBy", "name"), c.Query("sortDir", "asc"),
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Categories godoc
// @Summary      Categorías distintas del catálogo activo
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        wholesalerId  path  string  true  "ID del mayorista"
// @Success      200  {array}  string
// @Router       /api/wholesalers/{wholesalerId}/products/categories [get]
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	wholesalerID := c.Params("wholesalerId")
	if wholesalerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "wholesalerId es requerido"})
	}
	categories, err := h.uc.Categories(wholesalerID)
	if err != nil {
		return respondError(c, err)
	}
	if categories == nil {
		categories = []string{}
	}
	return c.JSON(categories)
}

// ExportPDF godoc
// @Summary      Exportar el catálogo activo del mayorista como PDF
// @Tags         products
// @Security     Bearer
// @Produce      application/pdf
// @Param        wholesalerId  path  string  true  "ID del mayorista"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/wholesalers/{wholesalerId}/products/export [get]
func (h *ProductHandler) ExportPDF(c *fiber.Ctx) error {
	wholesalerID := c.Params("wholesalerId")
	if wholesalerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "wholesalerId es requerido"})
	}
	pdf, err := h.exportUC.Export(wholesalerID)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="catalogo.pdf"`)
	return c.Send(pdf)
}

// GetByID godoc
// @Summary      Obtener producto por ID (también inactivos)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto (escritura con control de versión)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar + version leída"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetUserID(c), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ToggleStatus godoc
// @Summary      Activar o desactivar un producto
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true  "ID del producto"
// @Param        active  query  bool    true  "Estado deseado"
// @Success      200  {object}  dto.ProductResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/status [patch]
func (h *ProductHandler) ToggleStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.ToggleStatus(GetUserID(c), id, c.QueryBool("active", true))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrado lógico de un producto (idempotente)
// @Tags         products
// @Security     Bearer
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(GetUserID(c), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
