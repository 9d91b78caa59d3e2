// Package projection joins absences with their subject, teacher and student
// into the rows shown on the dashboard.
package projection

import (
	"ukdtimers/internal/model"
	"ukdtimers/internal/policy"
)

// Placeholders used when a referenced record or field is missing.
const (
	UnknownSubject  = "Невідомо"
	UnknownTeacher  = "Викладач"
	UnknownEmail    = "-"
	UnknownRoom     = "???"
	UnknownStudent  = "Студент"
	DefaultDeadline = "2024-01-01T00:00"
)

// Absences returns one view per absence s may see, in storage order.
// Absences whose subject no longer exists are dropped. A missing teacher or
// student is replaced by placeholders.
func Absences(doc *model.Document, s model.Session) []model.AbsenceView {
	views := make([]model.AbsenceView, 0, len(doc.Absences))
	for _, a := range doc.Absences {
		// The policy runs before any lookup, hidden absences are never joined.
		if !policy.CanViewAbsence(s, a) {
			continue
		}
		subject := doc.FindSubject(a.SubjectID)
		if subject == nil {
			continue
		}
		views = append(views, view(a, subject, doc.FindUser(subject.TeacherID), doc.FindUser(a.StudentID)))
	}
	return views
}

func view(a model.Absence, subject *model.Subject, teacher, student *model.User) model.AbsenceView {
	v := model.AbsenceView{
		ID:           a.ID,
		SubjectName:  subject.Name,
		TeacherName:  UnknownTeacher,
		TeacherEmail: UnknownEmail,
		Room:         UnknownRoom,
		StudentName:  UnknownStudent,
		Deadline:     a.Deadline,
	}
	if v.SubjectName == "" {
		v.SubjectName = UnknownSubject
	}
	if v.Deadline == "" {
		v.Deadline = DefaultDeadline
	}
	if teacher != nil {
		v.TeacherName = teacher.Fullname
		v.TeacherEmail = teacher.Email
		v.Room = teacher.Room
	}
	if student != nil {
		v.StudentName = student.Fullname
	}
	return v
}
