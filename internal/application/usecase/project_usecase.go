// Package usecase casos de uso CRUD del mock backend, uno por recurso.
package usecase

import (
	"time"

	"github.com/agileflow/agileflow-go/internal/application/dto"
	"github.com/agileflow/agileflow-go/internal/domain"
	"github.com/agileflow/agileflow-go/internal/domain/entity"
	"github.com/agileflow/agileflow-go/internal/domain/repository"
)

// ProjectUseCase casos de uso CRUD para proyectos.
type ProjectUseCase struct {
	repo repository.ProjectRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

// Create crea un proyecto. OwnerID solo llega por la variante /with-owner.
func (uc *ProjectUseCase) Create(in dto.ProjectRequest) (*dto.ProjectResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	status := in.Status
	if status == "" {
		status = "ACTIVE"
	}
	now := time.Now()
	project := &entity.Project{
		Name:        in.Name,
		Description: in.Description,
		Status:      status,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		OwnerID:     in.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// GetByID obtiene un proyecto por ID.
func (uc *ProjectUseCase) GetByID(id int64) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	return toProjectResponse(project), nil
}

// GetByName obtiene un proyecto por nombre exacto.
func (uc *ProjectUseCase) GetByName(name string) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	return toProjectResponse(project), nil
}

// List devuelve todos los proyectos.
func (uc *ProjectUseCase) List() ([]dto.ProjectResponse, error) {
	projects, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, *toProjectResponse(p))
	}
	return out, nil
}

// ListByUser devuelve los proyectos donde el usuario es owner o miembro.
func (uc *ProjectUseCase) ListByUser(userID int64) ([]dto.ProjectResponse, error) {
	projects, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, *toProjectResponse(p))
	}
	return out, nil
}

// Update actualiza nombre, descripción, estado y fechas.
func (uc *ProjectUseCase) Update(id int64, in dto.ProjectRequest) (*dto.ProjectResponse, error) {
	project, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		project.Name = in.Name
	}
	if in.Description != "" {
		project.Description = in.Description
	}
	if in.Status != "" {
		project.Status = in.Status
	}
	if !in.StartDate.IsZero() {
		project.StartDate = in.StartDate
	}
	if !in.EndDate.IsZero() {
		project.EndDate = in.EndDate
	}
	project.UpdatedAt = time.Now()
	if err := uc.repo.Update(project); err != nil {
		return nil, err
	}
	return toProjectResponse(project), nil
}

// Delete elimina un proyecto.
func (uc *ProjectUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// AssignUser agrega un usuario como miembro del proyecto. Idempotente.
func (uc *ProjectUseCase) AssignUser(projectID, userID int64) error {
	project, err := uc.repo.GetByID(projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	for _, id := range project.MemberIDs {
		if id == userID {
			return nil
		}
	}
	project.MemberIDs = append(project.MemberIDs, userID)
	project.UpdatedAt = time.Now()
	return uc.repo.Update(project)
}

// RemoveUser quita el owner asignado del proyecto.
func (uc *ProjectUseCase) RemoveUser(projectID int64) error {
	project, err := uc.repo.GetByID(projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	project.OwnerID = 0
	project.UpdatedAt = time.Now()
	return uc.repo.Update(project)
}

// LinkBacklog enlaza un product backlog al proyecto.
func (uc *ProjectUseCase) LinkBacklog(projectID, backlogID int64) error {
	project, err := uc.repo.GetByID(projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	project.ProductBacklogID = backlogID
	project.UpdatedAt = time.Now()
	return uc.repo.Update(project)
}

// UnlinkBacklog desenlaza el product backlog del proyecto.
func (uc *ProjectUseCase) UnlinkBacklog(projectID int64) error {
	project, err := uc.repo.GetByID(projectID)
	if err != nil {
		return err
	}
	if project == nil {
		return domain.ErrNotFound
	}
	project.ProductBacklogID = 0
	project.UpdatedAt = time.Now()
	return uc.repo.Update(project)
}

// Statistics calcula los agregados del dashboard de product owner.
func (uc *ProjectUseCase) Statistics() (*dto.ProjectStatisticsResponse, error) {
	projects, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	stats := &dto.ProjectStatisticsResponse{TotalProjects: len(projects)}
	for _, p := range projects {
		switch p.Status {
		case "ACTIVE":
			stats.ActiveProjects++
		case "COMPLETED":
			stats.CompletedProjects++
		}
	}
	return stats, nil
}

func toProjectResponse(p *entity.Project) *dto.ProjectResponse {
	if p == nil {
		return nil
	}
	return &dto.ProjectResponse{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Status:           p.Status,
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		OwnerID:          p.OwnerID,
		ProductBacklogID: p.ProductBacklogID,
		MemberIDs:        p.MemberIDs,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
