package repository

import "github.com/agileflow/agileflow-go/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id int64) error
	List() ([]*entity.User, error)
	ListByRole(role entity.Role) ([]*entity.User, error)
	Search(term string) ([]*entity.User, error)
	CountByRole(role entity.Role) (int, error)
}
