package memory

import (
	"sync"

	"github.com/agileflow/agileflow-go/internal/domain"
	"github.com/agileflow/agileflow-go/internal/domain/entity"
	"github.com/agileflow/agileflow-go/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación en memoria del puerto TaskRepository.
type TaskRepo struct {
	mu    sync.RWMutex
	seq   int64
	tasks map[int64]*entity.Task
}

// NewTaskRepository construye el repositorio de tasks.
func NewTaskRepository() *TaskRepo {
	return &TaskRepo{tasks: make(map[int64]*entity.Task)}
}

// Create persiste una nueva task asignándole ID.
func (r *TaskRepo) Create(task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	task.ID = r.seq
	r.tasks[task.ID] = cloneTask(task)
	return nil
}

// GetByID obtiene una task por ID; nil si no existe.
func (r *TaskRepo) GetByID(id int64) (*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok {
		return nil, nil
	}
	return cloneTask(t), nil
}

// Update reemplaza una task existente.
func (r *TaskRepo) Update(task *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[task.ID]; !ok {
		return domain.ErrNotFound
	}
	r.tasks[task.ID] = cloneTask(task)
	return nil
}

// Delete elimina una task.
func (r *TaskRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

// List devuelve todas las tasks ordenadas por ID.
func (r *TaskRepo) List() ([]*entity.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, cloneTask(t))
	}
	sortByID(out, func(t *entity.Task) int64 { return t.ID })
	return out, nil
}

// ListByUserStory devuelve las tasks de una user story.
func (r *TaskRepo) ListByUserStory(userStoryID int64) ([]*entity.Task, error) {
	all, _ := r.List()
	out := all[:0]
	for _, t := range all {
		if t.UserStoryID == userStoryID {
			out = append(out, t)
		}
	}
	return out, nil
}

// ListByAssignedUser devuelve las tasks asignadas a un usuario.
func (r *TaskRepo) ListByAssignedUser(userID int64) ([]*entity.Task, error) {
	all, _ := r.List()
	out := all[:0]
	for _, t := range all {
		if t.AssignedUserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func cloneTask(t *entity.Task) *entity.Task {
	cp := *t
	cp.Comments = append([]entity.TaskComment(nil), t.Comments...)
	return &cp
}
