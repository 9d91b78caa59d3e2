package model

// Role is the coarse permission level of a user.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
)

// IsStaff reports whether the role may manage users and absences.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleTeacher
}

const (
	// EmailDomain is appended to the username when a user has no email.
	EmailDomain = "ukd.edu.ua"
	// DefaultAvatar is assigned to new users and to legacy users without one.
	DefaultAvatar = "https://cdn-icons-png.flaticon.com/512/354/354637.png"
	// DefaultRoom is shown for users without a room, i.e. everyone but teachers.
	DefaultRoom = "Не вказано"
	// UnknownTeacherRoom is stored for teachers created without a room.
	UnknownTeacherRoom = "???"
)

var userFields = []string{"id", "username", "password", "fullname", "email", "role", "avatar", "room"}

// User is a person who can log in. The password is stored in plaintext, as it
// always has been in the document file.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Fullname string `json:"fullname,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     Role   `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
	Room     string `json:"room,omitempty"`

	// Extra carries legacy fields such as course or specialty.
	Extra Extra `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	base, err := marshalJSON(plain(u))
	if err != nil {
		return nil, err
	}
	return mergeExtra(base, u.Extra)
}

// UnmarshalJSON implements json.Unmarshaler.
func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	var p plain
	extra, err := decodeRecord(data, &p, userFields...)
	if err != nil {
		return err
	}
	*u = User(p)
	u.Extra = extra
	return nil
}

// Clone returns a deep copy of the user.
func (u User) Clone() User {
	u.Extra = u.Extra.Clone()
	return u
}
