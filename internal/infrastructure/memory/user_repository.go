// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Es el respaldo del mock backend de desarrollo: el frontend
// original traía el mismo backend simulado en mockService.js.
package memory

import (
	"strings"
	"sync"

	"github.com/agileflow/agileflow-go/internal/domain"
	"github.com/agileflow/agileflow-go/internal/domain/entity"
	"github.com/agileflow/agileflow-go/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria del puerto UserRepository.
type UserRepo struct {
	mu    sync.RWMutex
	seq   int64
	users map[int64]*entity.User
}

// NewUserRepository construye el repositorio de usuarios.
func NewUserRepository() *UserRepo {
	return &UserRepo{users: make(map[int64]*entity.User)}
}

// Create persiste un nuevo usuario asignándole ID.
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return domain.ErrUsernameAlreadyExists
		}
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}

	r.seq++
	user.ID = r.seq
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

// GetByID obtiene un usuario por ID; nil si no existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// GetByUsername obtiene un usuario por username; nil si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// GetByEmail obtiene un usuario por email; nil si no existe.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza un usuario existente.
func (r *UserRepo) Update(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

// Delete elimina un usuario.
func (r *UserRepo) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// List devuelve todos los usuarios ordenados por ID.
func (r *UserRepo) List() ([]*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	sortByID(out, func(u *entity.User) int64 { return u.ID })
	return out, nil
}

// ListByRole devuelve los usuarios con el rol dado.
func (r *UserRepo) ListByRole(role entity.Role) ([]*entity.User, error) {
	all, _ := r.List()
	out := all[:0]
	for _, u := range all {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

// Search busca por username o email, sin distinguir mayúsculas.
func (r *UserRepo) Search(term string) ([]*entity.User, error) {
	term = strings.ToLower(term)
	all, _ := r.List()
	out := all[:0]
	for _, u := range all {
		if strings.Contains(strings.ToLower(u.Username), term) ||
			strings.Contains(strings.ToLower(u.Email), term) {
			out = append(out, u)
		}
	}
	return out, nil
}

// CountByRole cuenta los usuarios con el rol dado.
func (r *UserRepo) CountByRole(role entity.Role) (int, error) {
	users, _ := r.ListByRole(role)
	return len(users), nil
}
