package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ukdtimers/internal/model"
)

// Fixture is the YAML seed format. Unknown user keys such as course or
// specialty are kept as extra fields.
type Fixture struct {
	Users    []FixtureUser    `yaml:"users"`
	Subjects []FixtureSubject `yaml:"subjects"`
	Absences []FixtureAbsence `yaml:"absences"`
	Creators []map[string]any `yaml:"creators"`
}

// FixtureUser is a user entry of a fixture.
type FixtureUser struct {
	ID       int            `yaml:"id"`
	Username string         `yaml:"username"`
	Password string         `yaml:"password"`
	Fullname string         `yaml:"fullname"`
	Email    string         `yaml:"email"`
	Role     string         `yaml:"role"`
	Avatar   string         `yaml:"avatar"`
	Room     string         `yaml:"room"`
	Extra    map[string]any `yaml:",inline"`
}

// FixtureSubject is a subject entry of a fixture.
type FixtureSubject struct {
	ID        int    `yaml:"id"`
	Name      string `yaml:"name"`
	TeacherID int    `yaml:"teacher_id"`
}

// FixtureAbsence is an absence entry of a fixture.
type FixtureAbsence struct {
	ID        int    `yaml:"id"`
	StudentID int    `yaml:"student_id"`
	SubjectID int    `yaml:"subject_id"`
	Deadline  string `yaml:"deadline"`
	Status    string `yaml:"status"`
}

// LoadFixture reads and decodes a YAML fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// Document converts the fixture. Entries without an id get the next free one.
func (f *Fixture) Document() (*model.Document, error) {
	doc := model.NewDocument()

	for _, u := range f.Users {
		extra, err := toExtra(u.Extra)
		if err != nil {
			return nil, fmt.Errorf("user %q: %w", u.Username, err)
		}
		id := u.ID
		if id == 0 {
			id = doc.NextUserID()
		}
		doc.Users = append(doc.Users, model.User{
			ID:       id,
			Username: u.Username,
			Password: u.Password,
			Fullname: u.Fullname,
			Email:    u.Email,
			Role:     model.Role(u.Role),
			Avatar:   u.Avatar,
			Room:     u.Room,
			Extra:    extra,
		})
	}

	for _, s := range f.Subjects {
		id := s.ID
		if id == 0 {
			id = doc.NextSubjectID()
		}
		doc.Subjects = append(doc.Subjects, model.Subject{ID: id, Name: s.Name, TeacherID: s.TeacherID})
	}

	for _, a := range f.Absences {
		id := a.ID
		if id == 0 {
			id = doc.NextAbsenceID()
		}
		status := a.Status
		if status == "" {
			status = model.AbsenceStatusActive
		}
		doc.Absences = append(doc.Absences, model.Absence{
			ID:        id,
			StudentID: a.StudentID,
			SubjectID: a.SubjectID,
			Deadline:  a.Deadline,
			Status:    status,
		})
	}

	for i, c := range f.Creators {
		raw, err := encodeValue(c)
		if err != nil {
			return nil, fmt.Errorf("creator %d: %w", i, err)
		}
		doc.Creators = append(doc.Creators, raw)
	}

	return doc, nil
}

func toExtra(values map[string]any) (model.Extra, error) {
	if len(values) == 0 {
		return nil, nil
	}
	extra := make(model.Extra, len(values))
	for k, v := range values {
		raw, err := encodeValue(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		extra[k] = raw
	}
	return extra, nil
}

// encodeValue marshals v without HTML escaping, matching the document files.
func encodeValue(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
