package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agileflow/agileflow-go/internal/application/dto"
	"github.com/agileflow/agileflow-go/internal/application/usecase"
)

// BacklogHandler maneja product backlogs, sprint backlogs y user stories.
type BacklogHandler struct {
	uc *usecase.BacklogUseCase
}

// NewBacklogHandler construye el handler.
func NewBacklogHandler(uc *usecase.BacklogUseCase) *BacklogHandler {
	return &BacklogHandler{uc: uc}
}

// CreateProductBacklog POST /api/productbacklogs.
func (h *BacklogHandler) CreateProductBacklog(c *fiber.Ctx) error {
	var in dto.ProductBacklogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	out, err := h.uc.CreateProductBacklog(in)
	if err != nil {
		return fail(c, err, "Product backlog not found")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProductBacklogs GET /api/productbacklogs.
func (h *BacklogHandler) ListProductBacklogs(c *fiber.Ctx) error {
	out, err := h.uc.ListProductBacklogs()
	if err != nil {
		return fail(c, err, "Product backlog not found")
	}
	return c.JSON(out)
}

// ListProductBacklogsByProject GET /api/productbacklogs/project/:id.
func (h *BacklogHandler) ListProductBacklogsByProject(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ListProductBacklogsByProject(id)
	if err != nil {
		return fail(c, err, "Project not found")
	}
	return c.JSON(out)
}

// UpdateProductBacklog PUT /api/productbacklogs/:id.
func (h *BacklogHandler) UpdateProductBacklog(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	var in dto.ProductBacklogRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	out, err := h.uc.UpdateProductBacklog(id, in)
	if err != nil {
		return fail(c, err, "Product backlog not found")
	}
	return c.JSON(out)
}

// DeleteProductBacklog DELETE /api/productbacklogs/:id.
func (h *BacklogHandler) DeleteProductBacklog(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	if err := h.uc.DeleteProductBacklog(id); err != nil {
		return fail(c, err, "Product backlog not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateSprintBacklog POST /api/sprint-backlogs/create?title=.
func (h *BacklogHandler) CreateSprintBacklog(c *fiber.Ctx) error {
	out, err := h.uc.CreateSprintBacklog(c.Query("title"))
	if err != nil {
		return fail(c, err, "Sprint backlog not found")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetSprintBacklog GET /api/sprint-backlogs/:id.
func (h *BacklogHandler) GetSprintBacklog(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetSprintBacklog(id)
	if err != nil {
		return fail(c, err, "Sprint backlog not found")
	}
	return c.JSON(out)
}

// ListSprintBacklogs GET /api/sprint-backlogs/all.
func (h *BacklogHandler) ListSprintBacklogs(c *fiber.Ctx) error {
	out, err := h.uc.ListSprintBacklogs()
	if err != nil {
		return fail(c, err, "Sprint backlog not found")
	}
	return c.JSON(out)
}

// AddUserStoryToSprintBacklog POST /api/sprint-backlogs/:id/add-user-story/:storyId.
func (h *BacklogHandler) AddUserStoryToSprintBacklog(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	storyID, err := c.ParamsInt("storyId")
	if err != nil || storyID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "Invalid story id"})
	}
	if err := h.uc.AssignUserStoryToSprint(int64(storyID), id); err != nil {
		return fail(c, err, "Sprint backlog not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListSprintBacklogStories GET /api/sprint-backlogs/:id/user-stories.
func (h *BacklogHandler) ListSprintBacklogStories(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ListSprintBacklogStories(id)
	if err != nil {
		return fail(c, err, "Sprint backlog not found")
	}
	return c.JSON(out)
}

// SprintProgress GET /api/sprint-backlogs/:id/progress.
func (h *BacklogHandler) SprintProgress(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.SprintProgress(id)
	if err != nil {
		return fail(c, err, "Sprint backlog not found")
	}
	return c.JSON(out)
}

// CreateUserStory POST /api/userstories.
func (h *BacklogHandler) CreateUserStory(c *fiber.Ctx) error {
	var in dto.UserStoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Invalid request body"})
	}
	out, err := h.uc.CreateUserStory(in)
	if err != nil {
		return fail(c, err, "User story not found")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetUserStory GET /api/userstories/:id.
func (h *BacklogHandler) GetUserStory(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetUserStory(id)
	if err != nil {
		return fail(c, err, "User story not found")
	}
	return c.JSON(out)
}

// ListUserStories GET /api/userstories.
func (h *BacklogHandler) ListUserStories(c *fiber.Ctx) error {
	out, err := h.uc.ListUserStories()
	if err != nil {
		return fail(c, err, "User story not found")
	}
	return c.JSON(out)
}

// DeleteUserStory DELETE /api/userstories/:id.
func (h *BacklogHandler) DeleteUserStory(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	if err := h.uc.DeleteUserStory(id); err != nil {
		return fail(c, err, "User story not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AssignUserStoryToSprint POST /api/userstories/:id/sprint/:backlogId.
func (h *BacklogHandler) AssignUserStoryToSprint(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	backlogID, err := c.ParamsInt("backlogId")
	if err != nil || backlogID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "Invalid backlog id"})
	}
	if err := h.uc.AssignUserStoryToSprint(id, int64(backlogID)); err != nil {
		return fail(c, err, "User story not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
