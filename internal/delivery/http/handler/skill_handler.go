package handler

import (
	"encoding/json"
	"strconv"

	"skill-matrix/internal/delivery/http/dto"
	"skill-matrix/internal/delivery/http/middleware"
	"skill-matrix/internal/pkg/response"
	"skill-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

type skillRequest struct {
	DepartmentID uuid.UUID `json:"departmentId"`
	Name         string    `json:"name"`
}

type setLevelRequest struct {
	EmployeeID uuid.UUID       `json:"employeeId"`
	SkillName  string          `json:"skillName"`
	Level      json.RawMessage `json:"level"`
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Post("/", h.Add)
	grp.Delete("/", h.Delete)
	grp.Put("/level", h.SetLevel)
}

func (h *SkillHandler) Add(c fiber.Ctx) error {
	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	dept, err := h.uc.AddSkill(c.Context(), req.DepartmentID, req.Name)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Skill added successfully", dto.NewDepartmentResponse(dept))
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	var req skillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	dept, err := h.uc.DeleteSkill(c.Context(), req.DepartmentID, req.Name)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, "Skill removed successfully", dto.NewDepartmentResponse(dept))
}

func (h *SkillHandler) SetLevel(c fiber.Ctx) error {
	var req setLevelRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	dept, err := h.uc.SetLevel(c.Context(), usecase.SetLevelInput{
		EmployeeID: req.EmployeeID,
		SkillName:  req.SkillName,
		Level:      levelToken(req.Level),
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDepartmentResponse(dept))
}

// levelToken accepts the level as either a JSON string ("X", "3") or a bare
// number (3), the two shapes dashboard clients have historically sent.
func levelToken(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.Itoa(n)
	}
	return string(raw)
}
