package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/agileflow/agileflow-go/internal/application/dto"
	"github.com/agileflow/agileflow-go/internal/application/usecase"
)

// TaskHandler maneja las peticiones HTTP para tasks (protegido). Creación y
// actualización reciben los datos por query params.
type TaskHandler struct {
	uc *usecase.TaskUseCase
}

// NewTaskHandler construye el handler.
func NewTaskHandler(uc *usecase.TaskUseCase) *TaskHandler {
	return &TaskHandler{uc: uc}
}

func taskInputFromQuery(c *fiber.Ctx) (usecase.TaskInput, error) {
	due, err := queryDate(c, "dueDate")
	if err != nil {
		return usecase.TaskInput{}, err
	}
	hours, _ := strconv.ParseFloat(c.Query("estimatedHours"), 64)
	return usecase.TaskInput{
		Title:          c.Query("title"),
		Description:    c.Query("description"),
		Status:         c.Query("status"),
		DueDate:        due,
		Priority:       c.Query("priority"),
		EstimatedHours: hours,
		UserStoryID:    int64(c.QueryInt("userStoryId")),
		AssignedUserID: int64(c.QueryInt("assignedUserId")),
	}, nil
}

// Create POST /api/tasks?title=&description=&status=&....
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	in, err := taskInputFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "dueDate must be YYYY-MM-DD"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return fail(c, err, "Task not found")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/tasks.
func (h *TaskHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return fail(c, err, "Task not found")
	}
	return c.JSON(out)
}

// GetByID GET /api/tasks/:id.
func (h *TaskHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return fail(c, err, "Task not found")
	}
	return c.JSON(out)
}

// Update PUT /api/tasks/:id?title=&description=&....
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	in, err := taskInputFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "dueDate must be YYYY-MM-DD"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return fail(c, err, "Task not found")
	}
	return c.JSON(out)
}

// Delete DELETE /api/tasks/:id.
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	if err := h.uc.Delete(id); err != nil {
		return fail(c, err, "Task not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Assign POST /api/tasks/:id/assign/:userId.
func (h *TaskHandler) Assign(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	userID, err := c.ParamsInt("userId")
	if err != nil || userID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "Invalid user id"})
	}
	if err := h.uc.Assign(id, int64(userID)); err != nil {
		return fail(c, err, "Task not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LogHours POST /api/tasks/:id/log-hours?hours=.
func (h *TaskHandler) LogHours(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	hours, err := strconv.ParseFloat(c.Query("hours"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "hours must be a number"})
	}
	if err := h.uc.LogHours(id, hours); err != nil {
		return fail(c, err, "Task not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateStatus POST /api/tasks/:id/update-status?status=.
func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	if err := h.uc.UpdateStatus(id, c.Query("status")); err != nil {
		return fail(c, err, "Task not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddComment POST /api/tasks/:id/comments?userId=&content=.
func (h *TaskHandler) AddComment(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return nil
	}
	userID := int64(c.QueryInt("userId"))
	if userID <= 0 {
		userID = GetUserID(c)
	}
	if err := h.uc.AddComment(id, userID, c.Query("content")); err != nil {
		return fail(c, err, "Task not found")
	}
	return c.SendStatus(fiber.StatusCreated)
}
