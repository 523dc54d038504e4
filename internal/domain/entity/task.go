package entity

import "time"

// Estados válidos de una Task.
const (
	TaskStatusToDo       = "TO_DO"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusDone       = "DONE"
)

// ValidTaskStatus reporta si el estado pertenece al conjunto permitido.
func ValidTaskStatus(s string) bool {
	return s == TaskStatusToDo || s == TaskStatusInProgress || s == TaskStatusDone
}

// Task unidad de trabajo dentro de una user story, asignable a un usuario.
type Task struct {
	ID             int64
	Title          string
	Description    string
	Status         string // TO_DO, IN_PROGRESS, DONE
	Priority       string // LOW, MEDIUM, HIGH
	DueDate        time.Time
	EstimatedHours float64
	LoggedHours    float64
	UserStoryID    int64 // 0 = sin user story
	AssignedUserID int64 // 0 = sin asignar
	Comments       []TaskComment
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TaskComment comentario de un usuario sobre una task.
type TaskComment struct {
	ID        int64
	UserID    int64
	Content   string
	CreatedAt time.Time
}
