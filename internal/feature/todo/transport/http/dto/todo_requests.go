// Package dto defines data transfer objects for the todo feature's HTTP transport layer.
package dto

// CreateTodoReq represents the request body for POST /todo.
// IsChecked is a pointer so that an explicit false passes the required check.
type CreateTodoReq struct {
	Content   string `json:"content" binding:"required,max=80"`
	IsChecked *bool  `json:"isChecked" binding:"required"`
}

// UpdateTodoReq represents the request body for PATCH /todo/:id.
type UpdateTodoReq struct {
	IsChecked *bool `json:"isChecked" binding:"required"`
}
