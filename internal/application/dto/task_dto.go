package dto

import "time"

// TaskResponse salida de una task. Creación y actualización viajan por
// query params en el contrato original.
type TaskResponse struct {
	ID             int64                 `json:"id"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	Status         string                `json:"status"`
	Priority       string                `json:"priority"`
	DueDate        time.Time             `json:"dueDate"`
	EstimatedHours float64               `json:"estimatedHours"`
	LoggedHours    float64               `json:"loggedHours"`
	UserStoryID    int64                 `json:"userStoryId,omitempty"`
	AssignedUserID int64                 `json:"assignedUserId,omitempty"`
	Comments       []TaskCommentResponse `json:"comments,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// TaskCommentResponse comentario sobre una task.
type TaskCommentResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
