package model

import "encoding/json"

// AbsenceView is an absence joined with its subject, teacher and student.
type AbsenceView struct {
	ID           int    `json:"id"`
	SubjectName  string `json:"subject_name"`
	TeacherName  string `json:"teacher_name"`
	TeacherEmail string `json:"teacher_email"`
	Room         string `json:"room"`
	StudentName  string `json:"student_name"`
	Deadline     string `json:"deadline"`
}

// UserView is a user as shown on the dashboard, without credentials.
type UserView struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Avatar   string `json:"avatar"`
	Room     string `json:"room"`
}

// NewUserView strips the password from u.
func NewUserView(u User) UserView {
	return UserView{
		ID:       u.ID,
		Username: u.Username,
		Fullname: u.Fullname,
		Email:    u.Email,
		Role:     u.Role,
		Avatar:   u.Avatar,
		Room:     u.Room,
	}
}

// Dashboard is everything the home page renders.
type Dashboard struct {
	Session       Session           `json:"session"`
	CurrentUser   *UserView         `json:"current_user"`
	UserAbsences  []AbsenceView     `json:"user_absences"`
	AllUsers      []UserView        `json:"all_users"`
	AllSubjects   []Subject         `json:"all_subjects"`
	Creators      []json.RawMessage `json:"creators"`
	TotalAbsences int               `json:"total_absences"`
	TotalSubjects int               `json:"total_subjects"`
}
