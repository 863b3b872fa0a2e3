// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// JoinReq represents the request body for the /auth/join endpoint.
// It uses Gin's binding tags for validation (required fields, email format,
// column-length limits).
type JoinReq struct {
	Email    string `json:"email" binding:"required,email,max=40"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required,max=15"`
	Nick     string `json:"nick" binding:"required,max=15"`
}

// JoinRes represents the sanitized user projection returned on a successful
// join. The password hash is never part of any response.
type JoinRes struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Nick  string `json:"nick"`
}
