package memory

import (
	"sync"
	"time"

	"github.com/agileflow/agileflow-go/internal/domain"
	"github.com/agileflow/agileflow-go/internal/domain/entity"
	"github.com/agileflow/agileflow-go/internal/domain/repository"
)

var _ repository.SprintRepository = (*SprintRepo)(nil)

// SprintRepo implementación en memoria del puerto SprintRepository.
type SprintRepo struct {
	mu      sync.RWMutex
	seq     int64
	sprints map[int64]*entity.Sprint
}

// NewSprintRepository construye el repositorio de sprints.
func NewSprintRepository() *SprintRepo {
	return &SprintRepo{sprints: make(map[int64]*entity.Sprint)}
}

// Create persiste un nuevo sprint asignándole ID.
func (r *SprintRepo) Create(sprint *entity.Sprint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	sprint.ID = r.seq
	cp := *sprint
	r.sprints[sprint.ID] = &cp
	return nil
}

// GetByID obtiene un sprint por ID; nil si no existe.
func (r *SprintRepo) GetByID(id int64) (*entity.Sprint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sprints[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

// Update reemplaza un sprint existente.
func (r *SprintRepo) Update(sprint *entity.Sprint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sprints[sprint.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *sprint
	r.sprints[sprint.ID] = &cp
	return nil
}

// Delete elimina un sprint.
func (r *SprintRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sprints[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.sprints, id)
	return nil
}

// List devuelve todos los sprints ordenados por ID.
func (r *SprintRepo) List() ([]*entity.Sprint, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Sprint, 0, len(r.sprints))
	for _, s := range r.sprints {
		cp := *s
		out = append(out, &cp)
	}
	sortByID(out, func(s *entity.Sprint) int64 { return s.ID })
	return out, nil
}

// ListBySprintBacklog devuelve los sprints asignados al sprint backlog.
func (r *SprintRepo) ListBySprintBacklog(sprintBacklogID int64) ([]*entity.Sprint, error) {
	all, _ := r.List()
	out := all[:0]
	for _, s := range all {
		if s.SprintBacklogID == sprintBacklogID {
			out = append(out, s)
		}
	}
	return out, nil
}

// ListActiveAt devuelve los sprints en curso en la fecha dada.
func (r *SprintRepo) ListActiveAt(date time.Time) ([]*entity.Sprint, error) {
	all, _ := r.List()
	out := all[:0]
	for _, s := range all {
		if s.ActiveAt(date) {
			out = append(out, s)
		}
	}
	return out, nil
}

// ListUpcoming devuelve los sprints que empiezan después de la fecha dada.
func (r *SprintRepo) ListUpcoming(after time.Time) ([]*entity.Sprint, error) {
	all, _ := r.List()
	out := all[:0]
	for _, s := range all {
		if s.StartDate.After(after) {
			out = append(out, s)
		}
	}
	return out, nil
}

// ListCompleted devuelve los sprints terminados antes de la fecha dada.
func (r *SprintRepo) ListCompleted(before time.Time) ([]*entity.Sprint, error) {
	all, _ := r.List()
	out := all[:0]
	for _, s := range all {
		if s.EndDate.Before(before) {
			out = append(out, s)
		}
	}
	return out, nil
}
