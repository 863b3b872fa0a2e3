package dto

import (
	"time"

	"todo_backend/internal/feature/todo/domain/entity"
)

// TodoItem represents a todo in the API response.
type TodoItem struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	IsChecked bool      `json:"isChecked"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserID    uint      `json:"userId"`
}

// TodoItemFromEntity converts a domain entity to its API representation.
func TodoItemFromEntity(t *entity.Todo) TodoItem {
	return TodoItem{
		ID:        t.ID,
		Content:   t.Content,
		IsChecked: t.IsChecked,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
		UserID:    t.UserID,
	}
}
