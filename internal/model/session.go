package model

// Session is the identity attached to a request. The zero value is an
// anonymous visitor.
type Session struct {
	UserID   int    `json:"user_id,omitempty"`
	Role     Role   `json:"role,omitempty"`
	Username string `json:"username,omitempty"`
}

// Authenticated reports whether the session belongs to a logged-in user.
func (s Session) Authenticated() bool {
	return s.UserID != 0
}

// SessionFor builds the session stored after a successful login.
func SessionFor(u *User) Session {
	return Session{UserID: u.ID, Role: u.Role, Username: u.Username}
}
