package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agileflow/agileflow-go/internal/application/dto"
	"github.com/agileflow/agileflow-go/internal/application/usecase"
)

// UserHandler maneja la administración de usuarios (solo admin).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List GET /api/users.
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err, "User not found")
	}
	return c.JSON(out)
}

// GetByID GET /api/users/:id.
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return fail(c, err, "User not found")
	}
	return c.JSON(out)
}

// Create POST /api/users?password=. El password llega por query param.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	out, err := h.uc.Create(in, c.Query("password"))
	if err != nil {
		return fail(c, err, "User not found")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/users/:id.
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return fail(c, err, "User not found")
	}
	return c.JSON(out)
}

// Delete DELETE /api/users/:id.
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err, "User not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Search GET /api/users/search?searchTerm=.
func (h *UserHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.Query("searchTerm"))
	if err != nil {
		return fail(c, err, "User not found")
	}
	return c.JSON(out)
}

// ListByRole GET /api/users/role?role=.
func (h *UserHandler) ListByRole(c *fiber.Ctx) error {
	out, err := h.uc.ListByRole(c.Query("role"))
	if err != nil {
		return fail(c, err, "User not found")
	}
	return c.JSON(out)
}

// CountByRole GET /api/users/count-by-role?role=.
func (h *UserHandler) CountByRole(c *fiber.Ctx) error {
	count, err := h.uc.CountByRole(c.Query("role"))
	if err != nil {
		return fail(c, err, "User not found")
	}
	return c.JSON(count)
}

// UsernameAvailable GET /api/users/username-available?username=.
func (h *UserHandler) UsernameAvailable(c *fiber.Ctx) error {
	free, err := h.uc.UsernameAvailable(c.Query("username"))
	if err != nil {
		return fail(c, err, "User not found")
	}
	return c.JSON(free)
}

// EmailAvailable GET /api/users/email-available?email=.
func (h *UserHandler) EmailAvailable(c *fiber.Ctx) error {
	free, err := h.uc.EmailAvailable(c.Query("email"))
	if err != nil {
		return fail(c, err, "User not found")
	}
	return c.JSON(free)
}
