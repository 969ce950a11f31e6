package models

// AuthResponse wraps the auth endpoints' success payload.
type AuthResponse struct {
	Success bool     `json:"success"`
	User    AuthUser `json:"user"`
}

// ErrorResponse is the single error envelope used everywhere.
type ErrorResponse struct {
	Error string `json:"error"`
}

type CartResponse struct {
	Success bool `json:"success"`
	Data    Cart `json:"data"`
}
