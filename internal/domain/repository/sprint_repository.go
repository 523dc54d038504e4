package repository

import (
	"time"

	"github.com/agileflow/agileflow-go/internal/domain/entity"
)

// SprintRepository define el puerto de persistencia para Sprint.
type SprintRepository interface {
	Create(sprint *entity.Sprint) error
	GetByID(id int64) (*entity.Sprint, error)
	Update(sprint *entity.Sprint) error
	Delete(id int64) error
	List() ([]*entity.Sprint, error)
	ListBySprintBacklog(sprintBacklogID int64) ([]*entity.Sprint, error)
	ListActiveAt(date time.Time) ([]*entity.Sprint, error)
	ListUpcoming(after time.Time) ([]*entity.Sprint, error)
	ListCompleted(before time.Time) ([]*entity.Sprint, error)
}
