package repository

import "github.com/agileflow/agileflow-go/internal/domain/entity"

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	Create(project *entity.Project) error
	GetByID(id int64) (*entity.Project, error)
	GetByName(name string) (*entity.Project, error)
	Update(project *entity.Project) error
	Delete(id int64) error
	List() ([]*entity.Project, error)
	ListByUser(userID int64) ([]*entity.Project, error)
}
