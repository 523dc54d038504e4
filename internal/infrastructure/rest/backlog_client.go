package rest

import (
	"context"
	"fmt"
	"net/url"

	"github.com/agileflow/agileflow-go/internal/application/dto"
)

// BacklogClient cliente de product backlogs, sprint backlogs y user stories.
// Los tres recursos comparten pantalla en el frontend original, así que
// comparten cliente.
type BacklogClient struct {
	c *Client
}

// NewBacklogClient construye el cliente de backlogs.
func NewBacklogClient(c *Client) *BacklogClient {
	return &BacklogClient{c: c}
}

// ── Product backlogs ──────────────────────────────────────────────────────────

// CreateProductBacklog crea un product backlog.
func (b *BacklogClient) CreateProductBacklog(ctx context.Context, in dto.ProductBacklogRequest) (*dto.ProductBacklogResponse, error) {
	var out dto.ProductBacklogResponse
	if err := b.c.post(ctx, "/api/productbacklogs", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListProductBacklogs devuelve todos los product backlogs.
func (b *BacklogClient) ListProductBacklogs(ctx context.Context) ([]dto.ProductBacklogResponse, error) {
	var out []dto.ProductBacklogResponse
	if err := b.c.get(ctx, "/api/productbacklogs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProductBacklogsByProject devuelve los product backlogs de un proyecto.
func (b *BacklogClient) ListProductBacklogsByProject(ctx context.Context, projectID int64) ([]dto.ProductBacklogResponse, error) {
	var out []dto.ProductBacklogResponse
	if err := b.c.get(ctx, fmt.Sprintf("/api/productbacklogs/project/%d", projectID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProductBacklog actualiza un product backlog.
func (b *BacklogClient) UpdateProductBacklog(ctx context.Context, id int64, in dto.ProductBacklogRequest) (*dto.ProductBacklogResponse, error) {
	var out dto.ProductBacklogResponse
	if err := b.c.put(ctx, fmt.Sprintf("/api/productbacklogs/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteProductBacklog elimina un product backlog.
func (b *BacklogClient) DeleteProductBacklog(ctx context.Context, id int64) error {
	return b.c.delete(ctx, fmt.Sprintf("/api/productbacklogs/%d", id))
}

// ── Sprint backlogs ───────────────────────────────────────────────────────────

// CreateSprintBacklog crea un sprint backlog (title por query param).
func (b *BacklogClient) CreateSprintBacklog(ctx context.Context, title string) (*dto.SprintBacklogResponse, error) {
	q := url.Values{}
	q.Set("title", title)

	var out dto.SprintBacklogResponse
	if err := b.c.post(ctx, "/api/sprint-backlogs/create", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetSprintBacklog devuelve un sprint backlog por id.
func (b *BacklogClient) GetSprintBacklog(ctx context.Context, id int64) (*dto.SprintBacklogResponse, error) {
	var out dto.SprintBacklogResponse
	if err := b.c.get(ctx, fmt.Sprintf("/api/sprint-backlogs/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSprintBacklogs devuelve todos los sprint backlogs.
func (b *BacklogClient) ListSprintBacklogs(ctx context.Context) ([]dto.SprintBacklogResponse, error) {
	var out []dto.SprintBacklogResponse
	if err := b.c.get(ctx, "/api/sprint-backlogs/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddUserStoryToSprintBacklog agrega una user story al sprint backlog.
func (b *BacklogClient) AddUserStoryToSprintBacklog(ctx context.Context, sprintBacklogID, userStoryID int64) error {
	return b.c.post(ctx, fmt.Sprintf("/api/sprint-backlogs/%d/add-user-story/%d", sprintBacklogID, userStoryID), nil, nil, nil)
}

// ListSprintBacklogStories devuelve las user stories del sprint backlog.
func (b *BacklogClient) ListSprintBacklogStories(ctx context.Context, sprintBacklogID int64) ([]dto.UserStoryResponse, error) {
	var out []dto.UserStoryResponse
	if err := b.c.get(ctx, fmt.Sprintf("/api/sprint-backlogs/%d/user-stories", sprintBacklogID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SprintProgress devuelve el progreso calculado del sprint backlog.
func (b *BacklogClient) SprintProgress(ctx context.Context, sprintBacklogID int64) (*dto.SprintProgressResponse, error) {
	var out dto.SprintProgressResponse
	if err := b.c.get(ctx, fmt.Sprintf("/api/sprint-backlogs/%d/progress", sprintBacklogID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── User stories ──────────────────────────────────────────────────────────────

// CreateUserStory crea una user story.
func (b *BacklogClient) CreateUserStory(ctx context.Context, in dto.UserStoryRequest) (*dto.UserStoryResponse, error) {
	var out dto.UserStoryResponse
	if err := b.c.post(ctx, "/api/userstories", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUserStory devuelve una user story por id.
func (b *BacklogClient) GetUserStory(ctx context.Context, id int64) (*dto.UserStoryResponse, error) {
	var out dto.UserStoryResponse
	if err := b.c.get(ctx, fmt.Sprintf("/api/userstories/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListUserStories devuelve todas las user stories.
func (b *BacklogClient) ListUserStories(ctx context.Context) ([]dto.UserStoryResponse, error) {
	var out []dto.UserStoryResponse
	if err := b.c.get(ctx, "/api/userstories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteUserStory elimina una user story.
func (b *BacklogClient) DeleteUserStory(ctx context.Context, id int64) error {
	return b.c.delete(ctx, fmt.Sprintf("/api/userstories/%d", id))
}

// AssignUserStoryToSprint asigna la user story a un sprint backlog.
func (b *BacklogClient) AssignUserStoryToSprint(ctx context.Context, userStoryID, sprintBacklogID int64) error {
	return b.c.post(ctx, fmt.Sprintf("/api/userstories/%d/sprint/%d", userStoryID, sprintBacklogID), nil, nil, nil)
}
