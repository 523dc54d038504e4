package usecase

import (
	"time"

	"github.com/agileflow/agileflow-go/internal/application/dto"
	"github.com/agileflow/agileflow-go/internal/domain"
	"github.com/agileflow/agileflow-go/internal/domain/entity"
	"github.com/agileflow/agileflow-go/internal/domain/repository"
)

// BacklogUseCase casos de uso para product backlogs, sprint backlogs y
// user stories. Se agrupan porque el frontend los opera en conjunto.
type BacklogUseCase struct {
	productRepo repository.ProductBacklogRepository
	sprintRepo  repository.SprintBacklogRepository
	storyRepo   repository.UserStoryRepository
	taskRepo    repository.TaskRepository
}

// NewBacklogUseCase construye el caso de uso.
func NewBacklogUseCase(
	productRepo repository.ProductBacklogRepository,
	sprintRepo repository.SprintBacklogRepository,
	storyRepo repository.UserStoryRepository,
	taskRepo repository.TaskRepository,
) *BacklogUseCase {
	return &BacklogUseCase{
		productRepo: productRepo,
		sprintRepo:  sprintRepo,
		storyRepo:   storyRepo,
		taskRepo:    taskRepo,
	}
}

// ── Product backlogs ──────────────────────────────────────────────

// CreateProductBacklog crea un product backlog.
func (uc *BacklogUseCase) CreateProductBacklog(in dto.ProductBacklogRequest) (*dto.ProductBacklogResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.productRepo.GetByTitle(in.Title)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	backlog := &entity.ProductBacklog{
		Title:     in.Title,
		ProjectID: in.ProjectID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productRepo.Create(backlog); err != nil {
		return nil, err
	}
	return toProductBacklogResponse(backlog), nil
}

// ListProductBacklogs devuelve todos los product backlogs.
func (uc *BacklogUseCase) ListProductBacklogs() ([]dto.ProductBacklogResponse, error) {
	backlogs, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductBacklogResponse, 0, len(backlogs))
	for _, b := range backlogs {
		out = append(out, *toProductBacklogResponse(b))
	}
	return out, nil
}

// ListProductBacklogsByProject devuelve los backlogs de un proyecto.
func (uc *BacklogUseCase) ListProductBacklogsByProject(projectID int64) ([]dto.ProductBacklogResponse, error) {
	backlogs, err := uc.productRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductBacklogResponse, 0, len(backlogs))
	for _, b := range backlogs {
		out = append(out, *toProductBacklogResponse(b))
	}
	return out, nil
}

// UpdateProductBacklog actualiza título y proyecto del backlog.
func (uc *BacklogUseCase) UpdateProductBacklog(id int64, in dto.ProductBacklogRequest) (*dto.ProductBacklogResponse, error) {
	backlog, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if backlog == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != "" {
		backlog.Title = in.Title
	}
	if in.ProjectID != 0 {
		backlog.ProjectID = in.ProjectID
	}
	backlog.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(backlog); err != nil {
		return nil, err
	}
	return toProductBacklogResponse(backlog), nil
}

// DeleteProductBacklog elimina un product backlog.
func (uc *BacklogUseCase) DeleteProductBacklog(id int64) error {
	return uc.productRepo.Delete(id)
}

// ── Sprint backlogs ───────────────────────────────────────────────

// CreateSprintBacklog crea un sprint backlog con el título dado.
func (uc *BacklogUseCase) CreateSprintBacklog(title string) (*dto.SprintBacklogResponse, error) {
	if title == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	backlog := &entity.SprintBacklog{Title: title, CreatedAt: now, UpdatedAt: now}
	if err := uc.sprintRepo.Create(backlog); err != nil {
		return nil, err
	}
	return toSprintBacklogResponse(backlog), nil
}

// GetSprintBacklog obtiene un sprint backlog por ID.
func (uc *BacklogUseCase) GetSprintBacklog(id int64) (*dto.SprintBacklogResponse, error) {
	backlog, err := uc.sprintRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if backlog == nil {
		return nil, domain.ErrNotFound
	}
	return toSprintBacklogResponse(backlog), nil
}

// ListSprintBacklogs devuelve todos los sprint backlogs.
func (uc *BacklogUseCase) ListSprintBacklogs() ([]dto.SprintBacklogResponse, error) {
	backlogs, err := uc.sprintRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SprintBacklogResponse, 0, len(backlogs))
	for _, b := range backlogs {
		out = append(out, *toSprintBacklogResponse(b))
	}
	return out, nil
}

// ListSprintBacklogStories devuelve las user stories del sprint backlog.
func (uc *BacklogUseCase) ListSprintBacklogStories(sprintBacklogID int64) ([]dto.UserStoryResponse, error) {
	stories, err := uc.storyRepo.ListBySprintBacklog(sprintBacklogID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserStoryResponse, 0, len(stories))
	for _, s := range stories {
		out = append(out, *toUserStoryResponse(s))
	}
	return out, nil
}

// SprintProgress calcula el porcentaje de tasks DONE de las stories del
// sprint backlog.
func (uc *BacklogUseCase) SprintProgress(sprintBacklogID int64) (*dto.SprintProgressResponse, error) {
	stories, err := uc.storyRepo.ListBySprintBacklog(sprintBacklogID)
	if err != nil {
		return nil, err
	}
	progress := &dto.SprintProgressResponse{SprintBacklogID: sprintBacklogID}
	for _, s := range stories {
		tasks, err := uc.taskRepo.ListByUserStory(s.ID)
		if err != nil {
			return nil, err
		}
		progress.TotalTasks += len(tasks)
		for _, t := range tasks {
			if t.Status == entity.TaskStatusDone {
				progress.DoneTasks++
			}
		}
	}
	if progress.TotalTasks > 0 {
		progress.Progress = float64(progress.DoneTasks) / float64(progress.TotalTasks) * 100
	}
	return progress, nil
}

// ── User stories ──────────────────────────────────────────────────

// CreateUserStory crea una user story en estado TO_DO.
func (uc *BacklogUseCase) CreateUserStory(in dto.UserStoryRequest) (*dto.UserStoryResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	story := &entity.UserStory{
		Title:            in.Title,
		Description:      in.Description,
		Priority:         in.Priority,
		Status:           entity.TaskStatusToDo,
		ProductBacklogID: in.ProductBacklogID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.storyRepo.Create(story); err != nil {
		return nil, err
	}
	return toUserStoryResponse(story), nil
}

// GetUserStory obtiene una user story por ID.
func (uc *BacklogUseCase) GetUserStory(id int64) (*dto.UserStoryResponse, error) {
	story, err := uc.storyRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, domain.ErrNotFound
	}
	return toUserStoryResponse(story), nil
}

// ListUserStories devuelve todas las user stories.
func (uc *BacklogUseCase) ListUserStories() ([]dto.UserStoryResponse, error) {
	stories, err := uc.storyRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserStoryResponse, 0, len(stories))
	for _, s := range stories {
		out = append(out, *toUserStoryResponse(s))
	}
	return out, nil
}

// DeleteUserStory elimina una user story.
func (uc *BacklogUseCase) DeleteUserStory(id int64) error {
	return uc.storyRepo.Delete(id)
}

// AssignUserStoryToSprint selecciona la story para un sprint backlog.
// Valida que el backlog destino exista.
func (uc *BacklogUseCase) AssignUserStoryToSprint(userStoryID, sprintBacklogID int64) error {
	story, err := uc.storyRepo.GetByID(userStoryID)
	if err != nil {
		return err
	}
	if story == nil {
		return domain.ErrNotFound
	}
	backlog, err := uc.sprintRepo.GetByID(sprintBacklogID)
	if err != nil {
		return err
	}
	if backlog == nil {
		return domain.ErrNotFound
	}
	story.SprintBacklogID = sprintBacklogID
	story.UpdatedAt = time.Now()
	return uc.storyRepo.Update(story)
}

func toProductBacklogResponse(b *entity.ProductBacklog) *dto.ProductBacklogResponse {
	if b == nil {
		return nil
	}
	return &dto.ProductBacklogResponse{
		ID:        b.ID,
		Title:     b.Title,
		ProjectID: b.ProjectID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toSprintBacklogResponse(b *entity.SprintBacklog) *dto.SprintBacklogResponse {
	if b == nil {
		return nil
	}
	return &dto.SprintBacklogResponse{
		ID:        b.ID,
		Title:     b.Title,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toUserStoryResponse(s *entity.UserStory) *dto.UserStoryResponse {
	if s == nil {
		return nil
	}
	return &dto.UserStoryResponse{
		ID:               s.ID,
		Title:            s.Title,
		Description:      s.Description,
		Priority:         s.Priority,
		Status:           s.Status,
		EpicID:           s.EpicID,
		ProductBacklogID: s.ProductBacklogID,
		SprintBacklogID:  s.SprintBacklogID,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
