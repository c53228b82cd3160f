package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/integraprice-api/internal/application/dto"
	"github.com/jhoicas/integraprice-api/internal/application/usecase"
)

// ReportHandler DRE (estado de resultados) sobre los productos guardados (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// SessionDRE godoc
// @Summary      DRE de la selección del usuario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DREResponse
// @Router       /api/reports/dre [get]
func (h *ReportHandler) SessionDRE(c *fiber.Ctx) error {
	return c.JSON(h.uc.SessionReport(c.UserContext(), GetUserID(c)))
}

// DRE godoc
// @Summary      DRE de una selección explícita
// @Description  Los IDs desconocidos se ignoran.
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DRERequest  true  "Productos y cantidades"
// @Success      200   {object}  dto.DREResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/dre [post]
func (h *ReportHandler) DRE(c *fiber.Ctx) error {
	var in dto.DRERequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.uc.Report(c.UserContext(), in))
}

// Selection godoc
// @Summary      Productos seleccionados
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SelectionEntryResponse
// @Router       /api/reports/selection [get]
func (h *ReportHandler) Selection(c *fiber.Ctx) error {
	return c.JSON(h.uc.Selection(GetUserID(c)))
}

// Toggle godoc
// @Summary      Marcar/desmarcar producto
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.SelectionEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/selection/{id}/toggle [post]
func (h *ReportHandler) Toggle(c *fiber.Ctx) error {
	// El ID queda guardado en la selección: se copia fuera del buffer de fasthttp.
	out, err := h.uc.Toggle(c.UserContext(), GetUserID(c), utils.CopyString(c.Params("id")))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetQuantity godoc
// @Summary      Cantidad vendida de un producto
// @Description  Se trunca a entero; negativos quedan en 0.
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del producto"
// @Param        body  body  dto.SetQuantityRequest  true  "Cantidad"
// @Success      200   {object}  dto.SelectionEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reports/selection/{id} [put]
func (h *ReportHandler) SetQuantity(c *fiber.Ctx) error {
	var in dto.SetQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.SetQuantity(c.UserContext(), GetUserID(c), utils.CopyString(c.Params("id")), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ClearSelection godoc
// @Summary      Vaciar selección
// @Tags         reports
// @Security     Bearer
// @Success      204
// @Router       /api/reports/selection [delete]
func (h *ReportHandler) ClearSelection(c *fiber.Ctx) error {
	h.uc.Clear(GetUserID(c))
	return c.SendStatus(fiber.StatusNoContent)
}

// Export godoc
// @Summary      Exportar DRE
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format  query  string  false  "pdf | xlsx"  default(pdf)
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/dre/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	file, err := h.uc.Export(c.UserContext(), GetUserID(c), c.Query("format", "pdf"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	return c.Send(file.Content)
}
