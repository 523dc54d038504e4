package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agileflow/agileflow-go/internal/application/dto"
	"github.com/agileflow/agileflow-go/internal/application/usecase"
)

// ProjectHandler maneja las peticiones HTTP para proyectos (protegido).
type ProjectHandler struct {
	uc *usecase.ProjectUseCase
}

// NewProjectHandler construye el handler.
func NewProjectHandler(uc *usecase.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// List GET /api/projects.
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err, "Project not found")
	}
	return c.JSON(out)
}

// GetByID GET /api/projects/:id.
func (h *ProjectHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return fail(c, err, "Project not found")
	}
	return c.JSON(out)
}

// GetByName GET /api/projects/name/:name.
func (h *ProjectHandler) GetByName(c *fiber.Ctx) error {
	name := c.Params("name")
	out, err := h.uc.GetByName(name)
	if err != nil {
		return fail(c, err, "Project not found")
	}
	return c.JSON(out)
}

// ListByUser GET /api/projects/user/:id.
func (h *ProjectHandler) ListByUser(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ListByUser(id)
	if err != nil {
		return fail(c, err, "User not found")
	}
	return c.JSON(out)
}

// Create POST /api/projects. La variante /with-owner acepta ownerId en el
// cuerpo; la base lo ignora.
func (h *ProjectHandler) Create(withOwner bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.ProjectRequest
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
		}
		if !withOwner {
			in.OwnerID = 0
		}
		out, err := h.uc.Create(in)
		if err != nil {
			return fail(c, err, "Project not found")
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// Update PUT /api/projects/:id.
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.ProjectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return fail(c, err, "Project not found")
	}
	return c.JSON(out)
}

// Delete DELETE /api/projects/:id.
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err, "Project not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AssignUser PUT /api/projects/:id/assign-user/:userId.
func (h *ProjectHandler) AssignUser(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "Invalid user id"})
	}
	if err := h.uc.AssignUser(id, int64(userID)); err != nil {
		return fail(c, err, "Project not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RemoveUser PUT /api/projects/:id/remove-user.
func (h *ProjectHandler) RemoveUser(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	if err := h.uc.RemoveUser(id); err != nil {
		return fail(c, err, "Project not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LinkBacklog PUT /api/projects/:id/link-backlog/:backlogId.
func (h *ProjectHandler) LinkBacklog(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	backlogID, err := c.ParamsInt("backlogId")
	if err != nil || backlogID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "Invalid backlog id"})
	}
	if err := h.uc.LinkBacklog(id, int64(backlogID)); err != nil {
		return fail(c, err, "Project not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UnlinkBacklog PUT /api/projects/:id/unlink-backlog.
func (h *ProjectHandler) UnlinkBacklog(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	if err := h.uc.UnlinkBacklog(id); err != nil {
		return fail(c, err, "Project not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Statistics GET /api/projects/statistics.
func (h *ProjectHandler) Statistics(c *fiber.Ctx) error {
	out, err := h.uc.Statistics()
	if err != nil {
		return fail(c, err, "Project not found")
	}
	return c.JSON(out)
}
