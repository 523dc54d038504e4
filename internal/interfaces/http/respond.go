package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/agileflow/agileflow-go/internal/application/dto"
	"github.com/agileflow/agileflow-go/internal/domain"
)

// fail mapea los errores sentinela del dominio a su status HTTP. notFoundMsg
// personaliza el mensaje de 404 por recurso.
func fail(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch err {
	case domain.ErrNotFound, domain.ErrUserNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: notFoundMsg})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Invalid input"})
	case domain.ErrDuplicate:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "Resource already exists"})
	case domain.ErrUsernameAlreadyExists:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "USERNAME_EXISTS", Message: "Username already exists"})
	case domain.ErrEmailAlreadyExists:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "Email already exists"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

// paramID extrae el path param :id como int64. ok=false ya respondió 400.
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "Invalid id"})
		return 0, false
	}
	return int64(id), true
}

// queryDate parsea un query param de fecha YYYY-MM-DD; zero si está ausente.
func queryDate(c *fiber.Ctx, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", raw)
}
