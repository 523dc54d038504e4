package dto

import "time"

// SprintResponse salida de un sprint. La creación/actualización viaja por
// query params en el contrato original, no hay request body.
type SprintResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	SprintBacklogID int64     `json:"sprintBacklogId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
