package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/integraprice-api/internal/application/dto"
	"github.com/jhoicas/integraprice-api/internal/application/usecase"
)

// SettingsHandler datos de la empresa y listas globales de costos (protegido).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Configuración de la empresa
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get(c.UserContext()))
}

// UpdateCompany godoc
// @Summary      Actualizar datos de la empresa
// @Description  Solo se modifican los campos presentes.
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCompanyInfoRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.CompanyInfoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/company [put]
func (h *SettingsHandler) UpdateCompany(c *fiber.Ctx) error {
	var in dto.UpdateCompanyInfoRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.uc.UpdateCompanyInfo(c.UserContext(), in))
}

// AddLine godoc
// @Summary      Agregar línea de costo
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        list  path  string                  true  "fixed_costs | taxes | sales_fees"
// @Param        body  body  dto.AddCostLineRequest  true  "Nombre de la línea"
// @Success      201   {object}  dto.CostLineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/{list} [post]
func (h *SettingsHandler) AddLine(c *fiber.Ctx) error {
	var in dto.AddCostLineRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	}
	out, err := h.uc.AddCostLine(c.UserContext(), c.Params("list"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateLine godoc
// @Summary      Modificar línea de costo
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        list  path  string                     true  "fixed_costs | taxes | sales_fees"
// @Param        id    path  string                     true  "ID de la línea"
// @Param        body  body  dto.UpdateCostLineRequest  true  "name y/o value"
// @Success      200   {object}  dto.CostLineResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/settings/{list}/{id} [put]
func (h *SettingsHandler) UpdateLine(c *fiber.Ctx) error {
	var in dto.UpdateCostLineRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateCostLine(c.UserContext(), c.Params("list"), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RemoveLine godoc
// @Summary      Eliminar línea de costo
// @Tags         settings
// @Security     Bearer
// @Param        list  path  string  true  "fixed_costs | taxes | sales_fees"
// @Param        id    path  string  true  "ID de la línea"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/settings/{list}/{id} [delete]
func (h *SettingsHandler) RemoveLine(c *fiber.Ctx) error {
	if err := h.uc.RemoveCostLine(c.UserContext(), c.Params("list"), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Suggestions godoc
// @Summary      Nombres sugeridos por lista
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SuggestionsResponse
// @Router       /api/settings/suggestions [get]
func (h *SettingsHandler) Suggestions(c *fiber.Ctx) error {
	return c.JSON(h.uc.Suggestions())
}
