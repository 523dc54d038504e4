package entity

import "time"

// Project proyecto ágil. Puede tener un owner asignado y un product backlog enlazado.
type Project struct {
	ID               int64
	Name             string
	Description      string
	Status           string // ACTIVE, COMPLETED, ON_HOLD
	StartDate        time.Time
	EndDate          time.Time
	OwnerID          int64 // 0 = sin owner
	ProductBacklogID int64 // 0 = sin backlog enlazado
	MemberIDs        []int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
