package repository

import "github.com/agileflow/agileflow-go/internal/domain/entity"

// TaskRepository define el puerto de persistencia para Task.
type TaskRepository interface {
	Create(task *entity.Task) error
	GetByID(id int64) (*entity.Task, error)
	Update(task *entity.Task) error
	Delete(id int64) error
	List() ([]*entity.Task, error)
	ListByUserStory(userStoryID int64) ([]*entity.Task, error)
	ListByAssignedUser(userID int64) ([]*entity.Task, error)
}
