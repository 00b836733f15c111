package user

import "time"

// User represents a registered account. The password hash never leaves this
// package in serialized form.
type User struct {
	ID           string
	Name         string
	Email        string
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
}

// View is the outward-facing shape of a user: what API responses return and
// what gets embedded in bearer tokens.
type View struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Serialize strips the password hash and returns the client-safe view.
func (u User) Serialize() View {
	return View{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Username: u.Username,
	}
}
