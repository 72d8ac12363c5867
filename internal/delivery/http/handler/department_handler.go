package handler

import (
	"skill-matrix/internal/delivery/http/dto"
	"skill-matrix/internal/delivery/http/middleware"
	"skill-matrix/internal/pkg/response"
	"skill-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type DepartmentHandler struct {
	uc usecase.DepartmentUsecase
}

type createDepartmentRequest struct {
	Name        string `json:"name"`
	TargetLevel *int   `json:"targetLevel"`
}

type updateDepartmentRequest struct {
	Name        *string `json:"name"`
	TargetLevel *int    `json:"targetLevel"`
}

func NewDepartmentHandler(uc usecase.DepartmentUsecase) *DepartmentHandler {
	return &DepartmentHandler{uc: uc}
}

func (h *DepartmentHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/departments")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

// List returns the complete data model the dashboard works from.
func (h *DepartmentHandler) List(c fiber.Ctx) error {
	depts, err := h.uc.ListDepartments(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewModelResponse(depts))
}

func (h *DepartmentHandler) Create(c fiber.Ctx) error {
	var req createDepartmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.CreateDepartment(c.Context(), usecase.CreateDepartmentInput{
		Name:        req.Name,
		TargetLevel: req.TargetLevel,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Department created successfully", dto.NewDepartmentResponse(created))
}

func (h *DepartmentHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req updateDepartmentRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.UpdateDepartment(c.Context(), id, usecase.UpdateDepartmentInput{
		Name:        req.Name,
		TargetLevel: req.TargetLevel,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDepartmentResponse(updated))
}

// Delete removes the department and returns the remaining ones so a client
// viewing the deleted department can switch to another or an empty state.
func (h *DepartmentHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	remaining, err := h.uc.DeleteDepartment(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Department deleted successfully", dto.NewModelResponse(remaining))
}
