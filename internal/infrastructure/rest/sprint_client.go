package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/agileflow/agileflow-go/internal/application/dto"
)

// dateParam formato de fecha que espera el backend en query params.
const dateParam = "2006-01-02"

// SprintClient cliente de /api/sprints. Creación y actualización viajan por
// query params, no por cuerpo: es el contrato del backend original.
type SprintClient struct {
	c *Client
}

// NewSprintClient construye el cliente de sprints.
func NewSprintClient(c *Client) *SprintClient {
	return &SprintClient{c: c}
}

// Create crea un sprint; sprintBacklogID 0 = sin backlog.
func (s *SprintClient) Create(ctx context.Context, name string, start, end time.Time, sprintBacklogID int64) (*dto.SprintResponse, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("startDate", start.Format(dateParam))
	q.Set("endDate", end.Format(dateParam))
	if sprintBacklogID > 0 {
		q.Set("sprintBacklogId", strconv.FormatInt(sprintBacklogID, 10))
	}

	var out dto.SprintResponse
	if err := s.c.post(ctx, "/api/sprints", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get devuelve un sprint por id.
func (s *SprintClient) Get(ctx context.Context, id int64) (*dto.SprintResponse, error) {
	var out dto.SprintResponse
	if err := s.c.get(ctx, fmt.Sprintf("/api/sprints/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// List devuelve todos los sprints.
func (s *SprintClient) List(ctx context.Context) ([]dto.SprintResponse, error) {
	var out []dto.SprintResponse
	if err := s.c.get(ctx, "/api/sprints", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update actualiza nombre y fechas de un sprint.
func (s *SprintClient) Update(ctx context.Context, id int64, name string, start, end time.Time) (*dto.SprintResponse, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("startDate", start.Format(dateParam))
	q.Set("endDate", end.Format(dateParam))

	var out dto.SprintResponse
	if err := s.c.put(ctx, fmt.Sprintf("/api/sprints/%d", id), q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un sprint.
func (s *SprintClient) Delete(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/api/sprints/%d", id))
}

// ListActive devuelve los sprints activos en la fecha dada (cero = hoy).
func (s *SprintClient) ListActive(ctx context.Context, date time.Time) ([]dto.SprintResponse, error) {
	q := url.Values{}
	if !date.IsZero() {
		q.Set("date", date.Format(dateParam))
	}

	var out []dto.SprintResponse
	if err := s.c.get(ctx, "/api/sprints/active", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListUpcoming devuelve los sprints que aún no empezaron.
func (s *SprintClient) ListUpcoming(ctx context.Context) ([]dto.SprintResponse, error) {
	var out []dto.SprintResponse
	if err := s.c.get(ctx, "/api/sprints/upcoming", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListCompleted devuelve los sprints terminados.
func (s *SprintClient) ListCompleted(ctx context.Context) ([]dto.SprintResponse, error) {
	var out []dto.SprintResponse
	if err := s.c.get(ctx, "/api/sprints/completed", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByProject devuelve los sprints de un proyecto.
func (s *SprintClient) ListByProject(ctx context.Context, projectID int64) ([]dto.SprintResponse, error) {
	var out []dto.SprintResponse
	if err := s.c.get(ctx, fmt.Sprintf("/api/sprints/project/%d", projectID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignToBacklog asigna el sprint a un sprint backlog.
func (s *SprintClient) AssignToBacklog(ctx context.Context, sprintID, sprintBacklogID int64) error {
	return s.c.post(ctx, fmt.Sprintf("/api/sprints/%d/assign/%d", sprintID, sprintBacklogID), nil, nil, nil)
}

// RemoveFromBacklog quita el sprint de su sprint backlog.
func (s *SprintClient) RemoveFromBacklog(ctx context.Context, sprintID int64) error {
	return s.c.post(ctx, fmt.Sprintf("/api/sprints/%d/remove-backlog", sprintID), nil, nil, nil)
}
