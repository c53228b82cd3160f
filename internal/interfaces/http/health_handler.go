package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// StorageUsage lo implementan los almacenes que saben medir su tamaño (Postgres).
type StorageUsage interface {
	Usage(ctx context.Context) (keys int64, sizeKB decimal.Decimal, err error)
}

// HealthHandler estado del servicio.
type HealthHandler struct {
	app     string
	storage string
	usage   StorageUsage
}

// NewHealthHandler construye el handler. usage puede ser nil.
func NewHealthHandler(app, storage string, usage StorageUsage) *HealthHandler {
	return &HealthHandler{app: app, storage: storage, usage: usage}
}

// Check godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	body := fiber.Map{"status": "ok", "app": h.app, "storage": h.storage}
	if h.usage == nil {
		return c.JSON(body)
	}
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	keys, sizeKB, err := h.usage.Usage(ctx)
	if err != nil {
		body["status"] = "degraded"
		body["error"] = err.Error()
		return c.Status(fiber.StatusServiceUnavailable).JSON(body)
	}
	body["keys"] = keys
	body["size_kb"] = sizeKB
	return c.JSON(body)
}
