package repository

import "github.com/agileflow/agileflow-go/internal/domain/entity"

// ProductBacklogRepository define el puerto de persistencia para ProductBacklog.
type ProductBacklogRepository interface {
	Create(backlog *entity.ProductBacklog) error
	GetByID(id int64) (*entity.ProductBacklog, error)
	GetByTitle(title string) (*entity.ProductBacklog, error)
	Update(backlog *entity.ProductBacklog) error
	Delete(id int64) error
	List() ([]*entity.ProductBacklog, error)
	ListByProject(projectID int64) ([]*entity.ProductBacklog, error)
}

// SprintBacklogRepository define el puerto de persistencia para SprintBacklog.
type SprintBacklogRepository interface {
	Create(backlog *entity.SprintBacklog) error
	GetByID(id int64) (*entity.SprintBacklog, error)
	Update(backlog *entity.SprintBacklog) error
	Delete(id int64) error
	List() ([]*entity.SprintBacklog, error)
}

// UserStoryRepository define el puerto de persistencia para UserStory.
type UserStoryRepository interface {
	Create(story *entity.UserStory) error
	GetByID(id int64) (*entity.UserStory, error)
	Update(story *entity.UserStory) error
	Delete(id int64) error
	List() ([]*entity.UserStory, error)
	ListByEpic(epicID int64) ([]*entity.UserStory, error)
	ListBySprintBacklog(sprintBacklogID int64) ([]*entity.UserStory, error)
	ListByProductBacklog(productBacklogID int64) ([]*entity.UserStory, error)
}
