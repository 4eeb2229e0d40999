package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/personnel-api/internal/application/dto"
	"github.com/jhoicas/personnel-api/internal/application/usecase"
)

// CompanyHandler maneja la administración de compañías.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler de compañías.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// GetByID godoc
// @Summary      Obtener una compañía
// @Tags         admin
// @Produce      json
// @Param        id  path  int  true  "id de la compañía"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /admin/company/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de compañía inválido"})
	}

	company, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapUserError(c, err)
	}
	if company == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "compañía no encontrada"})
	}
	return c.JSON(company)
}

// List godoc
// @Summary      Listar compañías
// @Tags         admin
// @Produce      json
// @Success      200  {array}  dto.CompanyResponse
// @Router       /admin/company [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	companies, err := h.uc.List(c.Context())
	if err != nil {
		return mapUserError(c, err)
	}
	return c.JSON(companies)
}

// Create godoc
// @Summary      Crear compañía
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "datos de la compañía"
// @Success      201  {object}  dto.CompanyResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /admin/company [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}

	company, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return mapUserError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(company)
}

// Delete godoc
// @Summary      Eliminar compañía
// @Tags         admin
// @Param        id  path  int  true  "id de la compañía"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /admin/company/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id de compañía inválido"})
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapUserError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
