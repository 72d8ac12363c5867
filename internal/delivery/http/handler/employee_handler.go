package handler

import (
	"skill-matrix/internal/delivery/http/dto"
	"skill-matrix/internal/delivery/http/middleware"
	"skill-matrix/internal/pkg/response"
	"skill-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type EmployeeHandler struct {
	uc usecase.EmployeeUsecase
}

type addEmployeeRequest struct {
	DepartmentID uuid.UUID `json:"departmentId"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
}

type updateEmployeeRequest struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
}

func NewEmployeeHandler(uc usecase.EmployeeUsecase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

func (h *EmployeeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/employees")
	grp.Post("/", h.Add)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *EmployeeHandler) Add(c fiber.Ctx) error {
	var req addEmployeeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	dept, err := h.uc.AddEmployee(c.Context(), usecase.AddEmployeeInput{
		DepartmentID: req.DepartmentID,
		Name:         req.Name,
		Role:         req.Role,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Employee added successfully", dto.NewDepartmentResponse(dept))
}

func (h *EmployeeHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req updateEmployeeRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	dept, err := h.uc.UpdateEmployee(c.Context(), id, usecase.UpdateEmployeeInput{
		Name: req.Name,
		Role: req.Role,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDepartmentResponse(dept))
}

func (h *EmployeeHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	dept, err := h.uc.DeleteEmployee(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Employee deleted successfully", dto.NewDepartmentResponse(dept))
}
