package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain/repository"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// HealthHandler sonda de estado: una lectura acotada sobre la tabla de
// clientes, idealmente vía el pool de solo lectura.
type HealthHandler struct {
	repo repository.CustomerRepository
	log  *logger.Logger
}

// NewHealthHandler construye el handler.
func NewHealthHandler(repo repository.CustomerRepository, log *logger.Logger) *HealthHandler {
	return &HealthHandler{repo: repo, log: log.Component("health")}
}

// Check godoc
// @Summary      Estado del servicio y la base de datos
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      500  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	// Cualquier fallo de la tienda responde 500 con status "error": un único
	// convenio para "base de datos inalcanzable".
	if err := h.repo.Ping(); err != nil {
		h.log.Error().Err(err).Msg("health check")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.HealthResponse{
			Status: "error",
			Database: dto.DatabaseStatus{
				Supabase: false,
				Message:  "no se pudo conectar con la base de datos",
			},
		})
	}
	now := time.Now().UTC()
	return c.JSON(dto.HealthResponse{
		Status: "ok",
		Database: dto.DatabaseStatus{
			Supabase: true,
			Message:  "conexión con la base de datos correcta",
		},
		Timestamp: &now,
	})
}
