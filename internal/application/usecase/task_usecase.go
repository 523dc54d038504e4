package usecase

import (
	"time"

	"github.com/agileflow/agileflow-go/internal/application/dto"
	"github.com/agileflow/agileflow-go/internal/domain"
	"github.com/agileflow/agileflow-go/internal/domain/entity"
	"github.com/agileflow/agileflow-go/internal/domain/repository"
)

// TaskInput entrada para crear o actualizar una task (llega por query params).
type TaskInput struct {
	Title          string
	Description    string
	Status         string
	DueDate        time.Time
	Priority       string
	EstimatedHours float64
	UserStoryID    int64
	AssignedUserID int64
}

// TaskUseCase casos de uso para tasks: CRUD, asignación, horas y comentarios.
type TaskUseCase struct {
	repo     repository.TaskRepository
	userRepo repository.UserRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(repo repository.TaskRepository, userRepo repository.UserRepository) *TaskUseCase {
	return &TaskUseCase{repo: repo, userRepo: userRepo}
}

// Create crea una task. Status por defecto TO_DO.
func (uc *TaskUseCase) Create(in TaskInput) (*dto.TaskResponse, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.TaskStatusToDo
	}
	if !entity.ValidTaskStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	task := &entity.Task{
		Title:          in.Title,
		Description:    in.Description,
		Status:         status,
		Priority:       in.Priority,
		DueDate:        in.DueDate,
		EstimatedHours: in.EstimatedHours,
		UserStoryID:    in.UserStoryID,
		AssignedUserID: in.AssignedUserID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// GetByID obtiene una task por ID.
func (uc *TaskUseCase) GetByID(id int64) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	return toTaskResponse(task), nil
}

// List devuelve todas las tasks.
func (uc *TaskUseCase) List() ([]dto.TaskResponse, error) {
	tasks, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, *toTaskResponse(t))
	}
	return out, nil
}

// Update actualiza los campos presentes de la task.
func (uc *TaskUseCase) Update(id int64, in TaskInput) (*dto.TaskResponse, error) {
	task, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	if in.Title != "" {
		task.Title = in.Title
	}
	if in.Description != "" {
		task.Description = in.Description
	}
	if in.Status != "" {
		if !entity.ValidTaskStatus(in.Status) {
			return nil, domain.ErrInvalidInput
		}
		task.Status = in.Status
	}
	if in.Priority != "" {
		task.Priority = in.Priority
	}
	if !in.DueDate.IsZero() {
		task.DueDate = in.DueDate
	}
	if in.EstimatedHours > 0 {
		task.EstimatedHours = in.EstimatedHours
	}
	if in.UserStoryID != 0 {
		task.UserStoryID = in.UserStoryID
	}
	if in.AssignedUserID != 0 {
		task.AssignedUserID = in.AssignedUserID
	}
	task.UpdatedAt = time.Now()
	if err := uc.repo.Update(task); err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// Delete elimina una task.
func (uc *TaskUseCase) Delete(id int64) error {
	return uc.repo.Delete(id)
}

// Assign asigna la task a un usuario existente.
func (uc *TaskUseCase) Assign(taskID, userID int64) error {
	task, err := uc.repo.GetByID(taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return domain.ErrNotFound
	}
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	task.AssignedUserID = userID
	task.UpdatedAt = time.Now()
	return uc.repo.Update(task)
}

// LogHours acumula horas trabajadas sobre la task.
func (uc *TaskUseCase) LogHours(taskID int64, hours float64) error {
	if hours <= 0 {
		return domain.ErrInvalidInput
	}
	task, err := uc.repo.GetByID(taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return domain.ErrNotFound
	}
	task.LoggedHours += hours
	task.UpdatedAt = time.Now()
	return uc.repo.Update(task)
}

// UpdateStatus cambia el estado de la task dentro del conjunto válido.
func (uc *TaskUseCase) UpdateStatus(taskID int64, status string) error {
	if !entity.ValidTaskStatus(status) {
		return domain.ErrInvalidInput
	}
	task, err := uc.repo.GetByID(taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return domain.ErrNotFound
	}
	task.Status = status
	task.UpdatedAt = time.Now()
	return uc.repo.Update(task)
}

// AddComment agrega un comentario de un usuario sobre la task.
func (uc *TaskUseCase) AddComment(taskID, userID int64, content string) error {
	if content == "" {
		return domain.ErrInvalidInput
	}
	task, err := uc.repo.GetByID(taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return domain.ErrNotFound
	}
	next := int64(len(task.Comments) + 1)
	task.Comments = append(task.Comments, entity.TaskComment{
		ID:        next,
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	})
	task.UpdatedAt = time.Now()
	return uc.repo.Update(task)
}

// ListByAssignedUser devuelve las tasks asignadas a un usuario.
func (uc *TaskUseCase) ListByAssignedUser(userID int64) ([]dto.TaskResponse, error) {
	tasks, err := uc.repo.ListByAssignedUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, *toTaskResponse(t))
	}
	return out, nil
}

func toTaskResponse(t *entity.Task) *dto.TaskResponse {
	if t == nil {
		return nil
	}
	comments := make([]dto.TaskCommentResponse, 0, len(t.Comments))
	for _, c := range t.Comments {
		comments = append(comments, dto.TaskCommentResponse{
			ID:        c.ID,
			UserID:    c.UserID,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}
	return &dto.TaskResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         t.Status,
		Priority:       t.Priority,
		DueDate:        t.DueDate,
		EstimatedHours: t.EstimatedHours,
		LoggedHours:    t.LoggedHours,
		UserStoryID:    t.UserStoryID,
		AssignedUserID: t.AssignedUserID,
		Comments:       comments,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}
