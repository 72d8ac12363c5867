package handler

import (
	"skill-matrix/internal/delivery/http/middleware"
	"skill-matrix/internal/pkg/response"
	"skill-matrix/internal/transfer"
	"skill-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type TransferHandler struct {
	uc usecase.TransferUsecase
}

func NewTransferHandler(uc usecase.TransferUsecase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

func (h *TransferHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/export", h.Export)
	r.Get("/export/csv", h.ExportCSV)
	r.Post("/import", h.Import)
}

func (h *TransferHandler) Export(c fiber.Ctx) error {
	model, err := h.uc.Export(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, model)
}

// ExportCSV streams one department's matrix as a CSV attachment; the
// departmentId query parameter selects which.
func (h *TransferHandler) ExportCSV(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Query("departmentId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	data, err := h.uc.ExportCSV(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="skills-matrix.csv"`)
	return c.Status(fiber.StatusOK).Send(data)
}

// Import treats an unparsable body the same as a structurally invalid one:
// both are format failures of the payload, not of the request shape.
func (h *TransferHandler) Import(c fiber.Ctx) error {
	var model transfer.Model
	if err := c.Bind().Body(&model); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Malformed import payload", nil, err)
	}

	if err := h.uc.Import(c.Context(), model); err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Import completed successfully", nil)
}
