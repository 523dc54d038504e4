package entity

import "time"

// ProductBacklog backlog de producto asociado a un proyecto.
type ProductBacklog struct {
	ID        int64
	Title     string
	ProjectID int64 // 0 = sin proyecto
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SprintBacklog backlog de sprint; agrupa user stories seleccionadas para un sprint.
type SprintBacklog struct {
	ID        int64
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserStory historia de usuario; vive en un product backlog y puede
// seleccionarse en un sprint backlog.
type UserStory struct {
	ID               int64
	Title            string
	Description      string
	Priority         string // LOW, MEDIUM, HIGH
	Status           string // TO_DO, IN_PROGRESS, DONE
	EpicID           int64  // 0 = sin épica
	ProductBacklogID int64
	SprintBacklogID  int64 // 0 = no seleccionada para sprint
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
