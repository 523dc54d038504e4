package dto

import "time"

// ProductBacklogRequest entrada para crear/actualizar un product backlog.
type ProductBacklogRequest struct {
	Title     string `json:"title"`
	ProjectID int64  `json:"projectId,omitempty"`
}

// ProductBacklogResponse salida de un product backlog.
type ProductBacklogResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	ProjectID int64     `json:"projectId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SprintBacklogResponse salida de un sprint backlog. La creación viaja por
// query param title en el contrato original.
type SprintBacklogResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserStoryRequest entrada para crear una user story.
type UserStoryRequest struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	Priority         string `json:"priority"`
	ProductBacklogID int64  `json:"productBacklogId,omitempty"`
}

// UserStoryResponse salida de una user story.
type UserStoryResponse struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Priority         string    `json:"priority"`
	Status           string    `json:"status"`
	EpicID           int64     `json:"epicId,omitempty"`
	ProductBacklogID int64     `json:"productBacklogId,omitempty"`
	SprintBacklogID  int64     `json:"sprintBacklogId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// SprintProgressResponse progreso calculado de un sprint backlog.
type SprintProgressResponse struct {
	SprintBacklogID int64   `json:"sprintBacklogId"`
	TotalTasks      int     `json:"totalTasks"`
	DoneTasks       int     `json:"doneTasks"`
	Progress        float64 `json:"progress"` // 0..100
}
