package memory

import (
	"sync"

	"github.com/agileflow/agileflow-go/internal/domain"
	"github.com/agileflow/agileflow-go/internal/domain/entity"
	"github.com/agileflow/agileflow-go/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación en memoria del puerto ProjectRepository.
type ProjectRepo struct {
	mu       sync.RWMutex
	seq      int64
	projects map[int64]*entity.Project
}

// NewProjectRepository construye el repositorio de proyectos.
func NewProjectRepository() *ProjectRepo {
	return &ProjectRepo{projects: make(map[int64]*entity.Project)}
}

// Create persiste un nuevo proyecto asignándole ID.
func (r *ProjectRepo) Create(project *entity.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.projects {
		if p.Name == project.Name {
			return domain.ErrDuplicate
		}
	}

	r.seq++
	project.ID = r.seq
	cp := cloneProject(project)
	r.projects[project.ID] = cp
	return nil
}

// GetByID obtiene un proyecto por ID; nil si no existe.
func (r *ProjectRepo) GetByID(id int64) (*entity.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.projects[id]
	if !ok {
		return nil, nil
	}
	return cloneProject(p), nil
}

// GetByName obtiene un proyecto por nombre; nil si no existe.
func (r *ProjectRepo) GetByName(name string) (*entity.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.projects {
		if p.Name == name {
			return cloneProject(p), nil
		}
	}
	return nil, nil
}

// Update reemplaza un proyecto existente.
func (r *ProjectRepo) Update(project *entity.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[project.ID]; !ok {
		return domain.ErrNotFound
	}
	r.projects[project.ID] = cloneProject(project)
	return nil
}

// Delete elimina un proyecto.
func (r *ProjectRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.projects[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.projects, id)
	return nil
}

// List devuelve todos los proyectos ordenados por ID.
func (r *ProjectRepo) List() ([]*entity.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, cloneProject(p))
	}
	sortByID(out, func(p *entity.Project) int64 { return p.ID })
	return out, nil
}

// ListByUser devuelve los proyectos donde el usuario es owner o miembro.
func (r *ProjectRepo) ListByUser(userID int64) ([]*entity.Project, error) {
	all, _ := r.List()
	out := all[:0]
	for _, p := range all {
		if p.OwnerID == userID || containsID(p.MemberIDs, userID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func cloneProject(p *entity.Project) *entity.Project {
	cp := *p
	cp.MemberIDs = append([]int64(nil), p.MemberIDs...)
	return &cp
}
