package models

// User never carries the password hash out of the repository layer except
// through Credentials.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Credentials is the login-time view of a user row.
type Credentials struct {
	User
	PasswordHash string `json:"-"`
}

// Contact is a standalone visitor message, no owner.
type Contact struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at,omitempty"`
}
