// --- models/models.go ---
package models

import "github.com/golang-jwt/jwt/v5"

// User is a persisted credential record. The password field holds the
// bcrypt hash, matching the on-disk shape of usuarios.json.
type User struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// Task is a shared to-do record. JSON field names follow the wire
// format the existing clients expect.
type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
}

// CredentialsRequest is the body for /register and /login.
type CredentialsRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// TaskRequest is the body for task creation and updates.
type TaskRequest struct {
	Title       string `json:"titulo"`
	Description string `json:"descripcion"`
}

// Claims defines the information stored in the JWT.
type Claims struct {
	Usuario string `json:"usuario"`
	jwt.RegisteredClaims
}
