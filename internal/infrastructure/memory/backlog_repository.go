package memory

import (
	"sync"

	"github.com/agileflow/agileflow-go/internal/domain"
	"github.com/agileflow/agileflow-go/internal/domain/entity"
	"github.com/agileflow/agileflow-go/internal/domain/repository"
)

var (
	_ repository.ProductBacklogRepository = (*ProductBacklogRepo)(nil)
	_ repository.SprintBacklogRepository  = (*SprintBacklogRepo)(nil)
	_ repository.UserStoryRepository      = (*UserStoryRepo)(nil)
)

// ProductBacklogRepo implementación en memoria del puerto ProductBacklogRepository.
type ProductBacklogRepo struct {
	mu       sync.RWMutex
	seq      int64
	backlogs map[int64]*entity.ProductBacklog
}

// NewProductBacklogRepository construye el repositorio de product backlogs.
func NewProductBacklogRepository() *ProductBacklogRepo {
	return &ProductBacklogRepo{backlogs: make(map[int64]*entity.ProductBacklog)}
}

// Create persiste un nuevo product backlog asignándole ID.
func (r *ProductBacklogRepo) Create(b *entity.ProductBacklog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	b.ID = r.seq
	cp := *b
	r.backlogs[b.ID] = &cp
	return nil
}

// GetByID obtiene un product backlog por ID; nil si no existe.
func (r *ProductBacklogRepo) GetByID(id int64) (*entity.ProductBacklog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.backlogs[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

// GetByTitle obtiene un product backlog por título; nil si no existe.
func (r *ProductBacklogRepo) GetByTitle(title string) (*entity.ProductBacklog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.backlogs {
		if b.Title == title {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza un product backlog existente.
func (r *ProductBacklogRepo) Update(b *entity.ProductBacklog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.backlogs[b.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *b
	r.backlogs[b.ID] = &cp
	return nil
}

// Delete elimina un product backlog.
func (r *ProductBacklogRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.backlogs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.backlogs, id)
	return nil
}

// List devuelve todos los product backlogs ordenados por ID.
func (r *ProductBacklogRepo) List() ([]*entity.ProductBacklog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.ProductBacklog, 0, len(r.backlogs))
	for _, b := range r.backlogs {
		cp := *b
		out = append(out, &cp)
	}
	sortByID(out, func(b *entity.ProductBacklog) int64 { return b.ID })
	return out, nil
}

// ListByProject devuelve los product backlogs de un proyecto.
func (r *ProductBacklogRepo) ListByProject(projectID int64) ([]*entity.ProductBacklog, error) {
	all, _ := r.List()
	out := all[:0]
	for _, b := range all {
		if b.ProjectID == projectID {
			out = append(out, b)
		}
	}
	return out, nil
}

// SprintBacklogRepo implementación en memoria del puerto SprintBacklogRepository.
type SprintBacklogRepo struct {
	mu       sync.RWMutex
	seq      int64
	backlogs map[int64]*entity.SprintBacklog
}

// NewSprintBacklogRepository construye el repositorio de sprint backlogs.
func NewSprintBacklogRepository() *SprintBacklogRepo {
	return &SprintBacklogRepo{backlogs: make(map[int64]*entity.SprintBacklog)}
}

// Create persiste un nuevo sprint backlog asignándole ID.
func (r *SprintBacklogRepo) Create(b *entity.SprintBacklog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	b.ID = r.seq
	cp := *b
	r.backlogs[b.ID] = &cp
	return nil
}

// GetByID obtiene un sprint backlog por ID; nil si no existe.
func (r *SprintBacklogRepo) GetByID(id int64) (*entity.SprintBacklog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.backlogs[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

// Update reemplaza un sprint backlog existente.
func (r *SprintBacklogRepo) Update(b *entity.SprintBacklog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.backlogs[b.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *b
	r.backlogs[b.ID] = &cp
	return nil
}

// Delete elimina un sprint backlog.
func (r *SprintBacklogRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.backlogs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.backlogs, id)
	return nil
}

// List devuelve todos los sprint backlogs ordenados por ID.
func (r *SprintBacklogRepo) List() ([]*entity.SprintBacklog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.SprintBacklog, 0, len(r.backlogs))
	for _, b := range r.backlogs {
		cp := *b
		out = append(out, &cp)
	}
	sortByID(out, func(b *entity.SprintBacklog) int64 { return b.ID })
	return out, nil
}

// UserStoryRepo implementación en memoria del puerto UserStoryRepository.
type UserStoryRepo struct {
	mu      sync.RWMutex
	seq     int64
	stories map[int64]*entity.UserStory
}

// NewUserStoryRepository construye el repositorio de user stories.
func NewUserStoryRepository() *UserStoryRepo {
	return &UserStoryRepo{stories: make(map[int64]*entity.UserStory)}
}

// Create persiste una nueva user story asignándole ID.
func (r *UserStoryRepo) Create(s *entity.UserStory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	s.ID = r.seq
	cp := *s
	r.stories[s.ID] = &cp
	return nil
}

// GetByID obtiene una user story por ID; nil si no existe.
func (r *UserStoryRepo) GetByID(id int64) (*entity.UserStory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.stories[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

// Update reemplaza una user story existente.
func (r *UserStoryRepo) Update(s *entity.UserStory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stories[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	r.stories[s.ID] = &cp
	return nil
}

// Delete elimina una user story.
func (r *UserStoryRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.stories, id)
	return nil
}

// List devuelve todas las user stories ordenadas por ID.
func (r *UserStoryRepo) List() ([]*entity.UserStory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.UserStory, 0, len(r.stories))
	for _, s := range r.stories {
		cp := *s
		out = append(out, &cp)
	}
	sortByID(out, func(s *entity.UserStory) int64 { return s.ID })
	return out, nil
}

// ListByEpic devuelve las user stories de una épica.
func (r *UserStoryRepo) ListByEpic(epicID int64) ([]*entity.UserStory, error) {
	all, _ := r.List()
	out := all[:0]
	for _, s := range all {
		if s.EpicID == epicID {
			out = append(out, s)
		}
	}
	return out, nil
}

// ListBySprintBacklog devuelve las user stories seleccionadas para el sprint backlog.
func (r *UserStoryRepo) ListBySprintBacklog(sprintBacklogID int64) ([]*entity.UserStory, error) {
	all, _ := r.List()
	out := all[:0]
	for _, s := range all {
		if s.SprintBacklogID == sprintBacklogID {
			out = append(out, s)
		}
	}
	return out, nil
}

// ListByProductBacklog devuelve las user stories de un product backlog.
func (r *UserStoryRepo) ListByProductBacklog(productBacklogID int64) ([]*entity.UserStory, error) {
	all, _ := r.List()
	out := all[:0]
	for _, s := range all {
		if s.ProductBacklogID == productBacklogID {
			out = append(out, s)
		}
	}
	return out, nil
}
