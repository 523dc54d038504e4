package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/agileflow/agileflow-go/internal/application/dto"
)

// TaskClient cliente de /api/tasks. Como en sprints, las mutaciones viajan
// por query params según el contrato del backend original.
type TaskClient struct {
	c *Client
}

// NewTaskClient construye el cliente de tasks.
func NewTaskClient(c *Client) *TaskClient {
	return &TaskClient{c: c}
}

// CreateTaskInput parámetros de creación de una task.
type CreateTaskInput struct {
	Title          string
	Description    string
	Status         string
	DueDate        time.Time
	Priority       string
	EstimatedHours float64
	UserStoryID    int64
	AssignedUserID int64
}

// Create crea una task.
func (t *TaskClient) Create(ctx context.Context, in CreateTaskInput) (*dto.TaskResponse, error) {
	q := url.Values{}
	q.Set("title", in.Title)
	q.Set("description", in.Description)
	q.Set("status", in.Status)
	q.Set("priority", in.Priority)
	if !in.DueDate.IsZero() {
		q.Set("dueDate", in.DueDate.Format(dateParam))
	}
	if in.EstimatedHours > 0 {
		q.Set("estimatedHours", strconv.FormatFloat(in.EstimatedHours, 'f', -1, 64))
	}
	if in.UserStoryID > 0 {
		q.Set("userStoryId", strconv.FormatInt(in.UserStoryID, 10))
	}
	if in.AssignedUserID > 0 {
		q.Set("assignedUserId", strconv.FormatInt(in.AssignedUserID, 10))
	}

	var out dto.TaskResponse
	if err := t.c.post(ctx, "/api/tasks", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List devuelve todas las tasks.
func (t *TaskClient) List(ctx context.Context) ([]dto.TaskResponse, error) {
	var out []dto.TaskResponse
	if err := t.c.get(ctx, "/api/tasks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get devuelve una task por id.
func (t *TaskClient) Get(ctx context.Context, id int64) (*dto.TaskResponse, error) {
	var out dto.TaskResponse
	if err := t.c.get(ctx, fmt.Sprintf("/api/tasks/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update actualiza los campos básicos de una task.
func (t *TaskClient) Update(ctx context.Context, id int64, in CreateTaskInput) (*dto.TaskResponse, error) {
	q := url.Values{}
	q.Set("title", in.Title)
	q.Set("description", in.Description)
	q.Set("status", in.Status)
	q.Set("priority", in.Priority)
	if !in.DueDate.IsZero() {
		q.Set("dueDate", in.DueDate.Format(dateParam))
	}
	if in.EstimatedHours > 0 {
		q.Set("estimatedHours", strconv.FormatFloat(in.EstimatedHours, 'f', -1, 64))
	}

	var out dto.TaskResponse
	if err := t.c.put(ctx, fmt.Sprintf("/api/tasks/%d", id), q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Assign asigna la task a un usuario.
func (t *TaskClient) Assign(ctx context.Context, taskID, userID int64) error {
	return t.c.post(ctx, fmt.Sprintf("/api/tasks/%d/assign/%d", taskID, userID), nil, nil, nil)
}

// LogHours registra horas trabajadas sobre la task.
func (t *TaskClient) LogHours(ctx context.Context, taskID int64, hours float64) error {
	q := url.Values{}
	q.Set("hours", strconv.FormatFloat(hours, 'f', -1, 64))
	return t.c.post(ctx, fmt.Sprintf("/api/tasks/%d/log-hours", taskID), q, nil, nil)
}

// UpdateStatus cambia el estado de la task.
func (t *TaskClient) UpdateStatus(ctx context.Context, taskID int64, status string) error {
	q := url.Values{}
	q.Set("status", status)
	return t.c.post(ctx, fmt.Sprintf("/api/tasks/%d/update-status", taskID), q, nil, nil)
}

// AddComment agrega un comentario de un usuario sobre la task.
func (t *TaskClient) AddComment(ctx context.Context, taskID, userID int64, content string) error {
	q := url.Values{}
	q.Set("userId", strconv.FormatInt(userID, 10))
	q.Set("content", content)
	return t.c.post(ctx, fmt.Sprintf("/api/tasks/%d/comments", taskID), q, nil, nil)
}

// Delete elimina una task.
func (t *TaskClient) Delete(ctx context.Context, id int64) error {
	return t.c.delete(ctx, fmt.Sprintf("/api/tasks/%d", id))
}
