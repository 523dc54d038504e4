package usecase

import (
	"time"

	"github.com/agileflow/agileflow-go/internal/application/dto"
	"github.com/agileflow/agileflow-go/internal/domain"
	"github.com/agileflow/agileflow-go/internal/domain/entity"
	"github.com/agileflow/agileflow-go/internal/domain/repository"
)

// SprintUseCase casos de uso CRUD para sprints.
type SprintUseCase struct {
	repo        repository.SprintRepository
	projectRepo repository.ProjectRepository
}

// NewSprintUseCase construye el caso de uso.
func NewSprintUseCase(repo repository.SprintRepository, projectRepo repository.ProjectRepository) *SprintUseCase {
	return &SprintUseCase{repo: repo, projectRepo: projectRepo}
}

// Create crea un sprint. Valida que la fecha de fin no preceda a la de inicio.
func (uc *SprintUseCase) Create(name string, start, end time.Time, sprintBacklogID int64) (*dto.SprintResponse, error) {
	if name == "" || start.IsZero() || end.IsZero() || end.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	sprint := &entity.Sprint{
		Name:            name,
		StartDate:       start,
		EndDate:         end,
		SprintBacklogID: sprintBacklogID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(sprint); err != nil {
		return nil, err
	}
	return toSprintResponse(sprint), nil
}

// GetByID obtiene un sprint por ID.
func (uc *SprintUseCase) GetByID(id int64) (*dto.SprintResponse, error) {
	sprint, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sprint == nil {
		return nil, domain.ErrNotFound
	}
	return toSprintResponse(sprint), nil
}

// List devuelve todos los sprints.
func (uc *SprintUseCase) List() ([]dto.SprintResponse, error) {
	sprints, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	return toSprintResponses(sprints), nil
}

// Update actualiza nombre y fechas del sprint.
func (uc *SprintUseCase) Update(id int64, name string, start, end time.Time) (*dto.SprintResponse, error) {
	sprint, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sprint == nil {
		return nil, domain.ErrNotFound
	}
	if name != "" {
		sprint.Name = name
	}
	if !start.IsZero() {
		sprint.StartDate = start
	}
	if !end.IsZero() {
		sprint.EndDate = end
	}
	if sprint.EndDate.Before(sprint.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	sprint.UpdatedAt = time.Now()
	if err := uc.repo.Update(sprint); err != nil {
		return nil, err
	}
	return toSprintResponse(sprint), nil
}

// Delete elimina un sprint.
func (uc *SprintUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// ListActive devuelve los sprints en curso en la fecha dada.
func (uc *SprintUseCase) ListActive(date time.Time) ([]dto.SprintResponse, error) {
	sprints, err := uc.repo.ListActiveAt(date)
	if err != nil {
		return nil, err
	}
	return toSprintResponses(sprints), nil
}

// ListUpcoming devuelve sprints que aún no comienzan.
func (uc *SprintUseCase) ListUpcoming() ([]dto.SprintResponse, error) {
	sprints, err := uc.repo.ListUpcoming(time.Now())
	if err != nil {
		return nil, err
	}
	return toSprintResponses(sprints), nil
}

// ListCompleted devuelve sprints ya finalizados.
func (uc *SprintUseCase) ListCompleted() ([]dto.SprintResponse, error) {
	sprints, err := uc.repo.ListCompleted(time.Now())
	if err != nil {
		return nil, err
	}
	return toSprintResponses(sprints), nil
}

// ListByProject devuelve los sprints cuyo backlog corresponde al proyecto.
func (uc *SprintUseCase) ListByProject(projectID int64) ([]dto.SprintResponse, error) {
	project, err := uc.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}
	// El proyecto enlaza un product backlog; los sprints del proyecto son
	// los que comparten su sprint backlog con las stories de ese backlog.
	// El mock original simplifica: devuelve todos los sprints con backlog.
	sprints, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := sprints[:0]
	for _, s := range sprints {
		if s.SprintBacklogID != 0 {
			out = append(out, s)
		}
	}
	return toSprintResponses(out), nil
}

// AssignToBacklog asigna el sprint a un sprint backlog.
func (uc *SprintUseCase) AssignToBacklog(sprintID, sprintBacklogID int64) error {
	sprint, err := uc.repo.GetByID(sprintID)
	if err != nil {
		return err
	}
	if sprint == nil {
		return domain.ErrNotFound
	}
	sprint.SprintBacklogID = sprintBacklogID
	sprint.UpdatedAt = time.Now()
	return uc.repo.Update(sprint)
}

// RemoveFromBacklog desasigna el sprint de su backlog.
func (uc *SprintUseCase) RemoveFromBacklog(sprintID int64) error {
	sprint, err := uc.repo.GetByID(sprintID)
	if err != nil {
		return err
	}
	if sprint == nil {
		return domain.ErrNotFound
	}
	sprint.SprintBacklogID = 0
	sprint.UpdatedAt = time.Now()
	return uc.repo.Update(sprint)
}

func toSprintResponse(s *entity.Sprint) *dto.SprintResponse {
	if s == nil {
		return nil
	}
	return &dto.SprintResponse{
		ID:              s.ID,
		Name:            s.Name,
		StartDate:       s.StartDate,
		EndDate:         s.EndDate,
		SprintBacklogID: s.SprintBacklogID,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func toSprintResponses(sprints []*entity.Sprint) []dto.SprintResponse {
	out := make([]dto.SprintResponse, 0, len(sprints))
	for _, s := range sprints {
		out = append(out, *toSprintResponse(s))
	}
	return out
}
