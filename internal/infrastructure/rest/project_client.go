package rest

import (
	"context"
	"fmt"

	"github.com/agileflow/agileflow-go/internal/application/dto"
)

// ProjectClient cliente de /api/projects.
type ProjectClient struct {
	c *Client
}

// NewProjectClient construye el cliente de proyectos.
func NewProjectClient(c *Client) *ProjectClient {
	return &ProjectClient{c: c}
}

// List devuelve todos los proyectos.
func (p *ProjectClient) List(ctx context.Context) ([]dto.ProjectResponse, error) {
	var out []dto.ProjectResponse
	if err := p.c.get(ctx, "/api/projects", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get devuelve un proyecto por id.
func (p *ProjectClient) Get(ctx context.Context, id int64) (*dto.ProjectResponse, error) {
	var out dto.ProjectResponse
	if err := p.c.get(ctx, fmt.Sprintf("/api/projects/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByName devuelve un proyecto por nombre.
func (p *ProjectClient) GetByName(ctx context.Context, name string) (*dto.ProjectResponse, error) {
	var out dto.ProjectResponse
	if err := p.c.get(ctx, "/api/projects/name/"+name, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByUser devuelve los proyectos donde participa el usuario.
func (p *ProjectClient) ListByUser(ctx context.Context, userID int64) ([]dto.ProjectResponse, error) {
	var out []dto.ProjectResponse
	if err := p.c.get(ctx, fmt.Sprintf("/api/projects/user/%d", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create crea un proyecto.
func (p *ProjectClient) Create(ctx context.Context, in dto.ProjectRequest) (*dto.ProjectResponse, error) {
	var out dto.ProjectResponse
	if err := p.c.post(ctx, "/api/projects", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateWithOwner crea un proyecto con owner asignado.
func (p *ProjectClient) CreateWithOwner(ctx context.Context, in dto.ProjectRequest) (*dto.ProjectResponse, error) {
	var out dto.ProjectResponse
	if err := p.c.post(ctx, "/api/projects/with-owner", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update actualiza un proyecto.
func (p *ProjectClient) Update(ctx context.Context, id int64, in dto.ProjectRequest) (*dto.ProjectResponse, error) {
	var out dto.ProjectResponse
	if err := p.c.put(ctx, fmt.Sprintf("/api/projects/%d", id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina un proyecto.
func (p *ProjectClient) Delete(ctx context.Context, id int64) error {
	return p.c.delete(ctx, fmt.Sprintf("/api/projects/%d", id))
}

// AssignUser asigna un usuario al proyecto.
func (p *ProjectClient) AssignUser(ctx context.Context, projectID, userID int64) error {
	return p.c.put(ctx, fmt.Sprintf("/api/projects/%d/assign-user/%d", projectID, userID), nil, nil, nil)
}

// RemoveUser quita el usuario asignado del proyecto.
func (p *ProjectClient) RemoveUser(ctx context.Context, projectID int64) error {
	return p.c.put(ctx, fmt.Sprintf("/api/projects/%d/remove-user", projectID), nil, nil, nil)
}

// LinkBacklog enlaza un product backlog al proyecto.
func (p *ProjectClient) LinkBacklog(ctx context.Context, projectID, backlogID int64) error {
	return p.c.put(ctx, fmt.Sprintf("/api/projects/%d/link-backlog/%d", projectID, backlogID), nil, nil, nil)
}

// UnlinkBacklog desenlaza el product backlog del proyecto.
func (p *ProjectClient) UnlinkBacklog(ctx context.Context, projectID int64) error {
	return p.c.put(ctx, fmt.Sprintf("/api/projects/%d/unlink-backlog", projectID), nil, nil, nil)
}

// Statistics devuelve agregados de proyectos para dashboards.
func (p *ProjectClient) Statistics(ctx context.Context) (*dto.ProjectStatisticsResponse, error) {
	var out dto.ProjectStatisticsResponse
	if err := p.c.get(ctx, "/api/projects/statistics", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
