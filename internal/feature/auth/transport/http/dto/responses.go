package dto

// MessageRes is a generic success response body.
type MessageRes struct {
	Message string `json:"message"`
}

// ErrorRes is a generic error response body.
type ErrorRes struct {
	Error string `json:"error"`
}

// MeRes represents the response body for the /auth/me endpoint.
type MeRes struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Nick  string `json:"nick"`
}
