package models

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents the JWT token response
type LoginResponse struct {
	Token string `json:"token"`
}

// User represents a user in the system. Users are created externally (or
// seeded at startup); there is no registration endpoint.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // never serialized
}
