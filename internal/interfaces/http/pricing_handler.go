package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/integraprice-api/internal/application/dto"
	"github.com/jhoicas/integraprice-api/internal/application/usecase"
)

// PricingHandler calculadora de precios (protegido).
type PricingHandler struct {
	uc *usecase.PricingUseCase
}

// NewPricingHandler construye el handler.
func NewPricingHandler(uc *usecase.PricingUseCase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// Calculate godoc
// @Summary      Calcular precio
// @Description  Las listas globales omitidas se toman de la configuración de la empresa.
// @Tags         pricing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PricingRequest  true  "Configuración de la calculadora"
// @Success      200   {object}  dto.PricingResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pricing/calculate [post]
func (h *PricingHandler) Calculate(c *fiber.Ctx) error {
	var in dto.PricingRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	return c.JSON(h.uc.Calculate(c.UserContext(), in))
}

// Defaults godoc
// @Summary      Configuración inicial de la calculadora
// @Tags         pricing
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PricingDefaultsResponse
// @Router       /api/pricing/defaults [get]
func (h *PricingHandler) Defaults(c *fiber.Ctx) error {
	return c.JSON(h.uc.Defaults(c.UserContext()))
}
