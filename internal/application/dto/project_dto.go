package dto

import "time"

// ProjectRequest entrada para crear/actualizar un proyecto.
type ProjectRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Status      string    `json:"status,omitempty"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	OwnerID     int64     `json:"ownerId,omitempty"` // solo en /with-owner
}

// ProjectResponse salida de un proyecto.
type ProjectResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Status           string    `json:"status"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	OwnerID          int64     `json:"ownerId,omitempty"`
	ProductBacklogID int64     `json:"productBacklogId,omitempty"`
	MemberIDs        []int64   `json:"memberIds,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ProjectStatisticsResponse agregados para el dashboard de product owner.
type ProjectStatisticsResponse struct {
	TotalProjects     int `json:"totalProjects"`
	ActiveProjects    int `json:"activeProjects"`
	CompletedProjects int `json:"completedProjects"`
}
