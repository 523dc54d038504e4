package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/agileflow/agileflow-go/internal/application/dto"
	"github.com/agileflow/agileflow-go/internal/application/usecase"
)

// SprintHandler maneja las peticiones HTTP para sprints (protegido).
// Creación y actualización reciben los datos por query params, como
// en el contrato original.
type SprintHandler struct {
	uc *usecase.SprintUseCase
}

// NewSprintHandler construye el handler.
func NewSprintHandler(uc *usecase.SprintUseCase) *SprintHandler {
	return &SprintHandler{uc: uc}
}

// Create POST /api/sprints?name=&startDate=&endDate=&sprintBacklogId=.
func (h *SprintHandler) Create(c *fiber.Ctx) error {
	start, err := queryDate(c, "startDate")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "startDate must be YYYY-MM-DD"})
	}
	end, err := queryDate(c, "endDate")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "endDate must be YYYY-MM-DD"})
	}
	out, err := h.uc.Create(c.Query("name"), start, end, int64(c.QueryInt("sprintBacklogId")))
	if err != nil {
		return fail(c, err, "Sprint not found")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID GET /api/sprints/:id.
func (h *SprintHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return fail(c, err, "Sprint not found")
	}
	return c.JSON(out)
}

// List GET /api/sprints.
func (h *SprintHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err, "Sprint not found")
	}
	return c.JSON(out)
}

// Update PUT /api/sprints/:id?name=&startDate=&endDate=.
func (h *SprintHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	start, err := queryDate(c, "startDate")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "startDate must be YYYY-MM-DD"})
	}
	end, err := queryDate(c, "endDate")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "endDate must be YYYY-MM-DD"})
	}
	out, err := h.uc.Update(id, c.Query("name"), start, end)
	if err != nil {
		return fail(c, err, "Sprint not found")
	}
	return c.JSON(out)
}

// Delete DELETE /api/sprints/:id.
func (h *SprintHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err, "Sprint not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListActive GET /api/sprints/active?date=. Sin fecha usa hoy.
func (h *SprintHandler) ListActive(c *fiber.Ctx) error {
	date, err := queryDate(c, "date")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "date must be YYYY-MM-DD"})
	}
	if date.IsZero() {
		date = time.Now()
	}
	out, err := h.uc.ListActive(date)
	if err != nil {
		return fail(c, err, "Sprint not found")
	}
	return c.JSON(out)
}

// ListUpcoming GET /api/sprints/upcoming.
func (h *SprintHandler) ListUpcoming(c *fiber.Ctx) error {
	out, err := h.uc.ListUpcoming()
	if err != nil {
		return fail(c, err, "Sprint not found")
	}
	return c.JSON(out)
}

// ListCompleted GET /api/sprints/completed.
func (h *SprintHandler) ListCompleted(c *fiber.Ctx) error {
	out, err := h.uc.ListCompleted()
	if err != nil {
		return fail(c, err, "Sprint not found")
	}
	return c.JSON(out)
}

// ListByProject GET /api/sprints/project/:id.
func (h *SprintHandler) ListByProject(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.ListByProject(id)
	if err != nil {
		return fail(c, err, "Project not found")
	}
	return c.JSON(out)
}

// AssignToBacklog POST /api/sprints/:id/assign/:backlogId.
func (h *SprintHandler) AssignToBacklog(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	backlogID, err := c.ParamsInt("backlogId")
	if err != nil || backlogID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "Invalid backlog id"})
	}
	if err := h.uc.AssignToBacklog(id, int64(backlogID)); err != nil {
		return fail(c, err, "Sprint not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RemoveFromBacklog POST /api/sprints/:id/remove-backlog.
func (h *SprintHandler) RemoveFromBacklog(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	if err := h.uc.RemoveFromBacklog(id); err != nil {
		return fail(c, err, "Sprint not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
