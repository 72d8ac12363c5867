package handler

import (
	"errors"

	"skill-matrix/internal/delivery/http/middleware"
	"skill-matrix/internal/pkg/response"
	"skill-matrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// mapUsecaseError translates usecase sentinels into AppErrors for the error
// middleware. Validation and format failures happen before any write, so a
// 4xx here means nothing changed.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrInvalidLevel):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid level", nil, err)
	case errors.Is(err, usecase.ErrInvalidTargetLevel):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid target level", nil, err)
	case errors.Is(err, usecase.ErrBadFormat):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Malformed import payload", nil, err)
	case errors.Is(err, usecase.ErrDepartmentExists):
		return middleware.NewAppError(fiber.StatusConflict, "Department already exists", nil, err)
	case errors.Is(err, usecase.ErrSkillExists):
		return middleware.NewAppError(fiber.StatusConflict, "Skill already exists", nil, err)
	case errors.Is(err, usecase.ErrDepartmentNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Department not found", nil, err)
	case errors.Is(err, usecase.ErrEmployeeNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Employee not found", nil, err)
	case errors.Is(err, usecase.ErrSkillNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Skill not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
