package entity

import "time"

// Sprint iteración con fechas de inicio y fin, opcionalmente asignada a un sprint backlog.
type Sprint struct {
	ID              int64
	Name            string
	StartDate       time.Time
	EndDate         time.Time
	SprintBacklogID int64 // 0 = sin backlog asignado
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ActiveAt reporta si el sprint está en curso en la fecha dada.
func (s Sprint) ActiveAt(t time.Time) bool {
	return !t.Before(s.StartDate) && !t.After(s.EndDate)
}
