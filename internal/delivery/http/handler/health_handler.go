package handler

import (
	"skill-matrix/internal/database"
	"skill-matrix/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db database.DB
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Check)
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	if h.db == nil || h.db.Ping(c.Context()) != nil {
		return response.Error(c, fiber.StatusServiceUnavailable, "unhealthy",
			healthResponse{Status: "unhealthy", Database: "disconnected"})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK,
		healthResponse{Status: "healthy", Database: "connected"})
}
