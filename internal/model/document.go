package model

import "encoding/json"

var documentFields = []string{"users", "subjects", "absences", "creators"}

// Document is the whole dataset. It is always read and written as one unit.
type Document struct {
	Users    []User    `json:"users"`
	Subjects []Subject `json:"subjects"`
	Absences []Absence `json:"absences"`
	// Creators are free-form profile cards of the project authors.
	Creators []json.RawMessage `json:"creators"`

	Extra Extra `json:"-"`
}

// NewDocument returns an empty document with all collections present.
func NewDocument() *Document {
	return &Document{
		Users:    []User{},
		Subjects: []Subject{},
		Absences: []Absence{},
		Creators: []json.RawMessage{},
	}
}

// Normalize replaces missing collections with empty ones so they encode as [].
func (d *Document) Normalize() {
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Subjects == nil {
		d.Subjects = []Subject{}
	}
	if d.Absences == nil {
		d.Absences = []Absence{}
	}
	if d.Creators == nil {
		d.Creators = []json.RawMessage{}
	}
}

// MarshalJSON implements json.Marshaler.
func (d Document) MarshalJSON() ([]byte, error) {
	type plain Document
	d.Normalize()
	base, err := marshalJSON(plain(d))
	if err != nil {
		return nil, err
	}
	return mergeExtra(base, d.Extra)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Document) UnmarshalJSON(data []byte) error {
	type plain Document
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := splitExtra(data, documentFields...)
	if err != nil {
		return err
	}
	*d = Document(p)
	d.Extra = extra
	for i, c := range d.Creators {
		compact, err := compactRaw(c)
		if err != nil {
			return err
		}
		d.Creators[i] = compact
	}
	d.Normalize()
	return nil
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{
		Users:    make([]User, len(d.Users)),
		Subjects: make([]Subject, len(d.Subjects)),
		Absences: make([]Absence, len(d.Absences)),
		Creators: make([]json.RawMessage, len(d.Creators)),
		Extra:    d.Extra.Clone(),
	}
	for i, u := range d.Users {
		out.Users[i] = u.Clone()
	}
	for i, s := range d.Subjects {
		out.Subjects[i] = s.Clone()
	}
	for i, a := range d.Absences {
		out.Absences[i] = a.Clone()
	}
	for i, c := range d.Creators {
		out.Creators[i] = append(json.RawMessage(nil), c...)
	}
	return out
}

// FindUser returns the first user with the given id, or nil.
func (d *Document) FindUser(id int) *User {
	for i := range d.Users {
		if d.Users[i].ID == id {
			return &d.Users[i]
		}
	}
	return nil
}

// FindSubject returns the first subject with the given id, or nil.
func (d *Document) FindSubject(id int) *Subject {
	for i := range d.Subjects {
		if d.Subjects[i].ID == id {
			return &d.Subjects[i]
		}
	}
	return nil
}

// NextUserID returns an id greater than every stored user id.
func (d *Document) NextUserID() int {
	next := 1
	for _, u := range d.Users {
		if u.ID >= next {
			next = u.ID + 1
		}
	}
	return next
}

// NextSubjectID returns an id greater than every stored subject id.
func (d *Document) NextSubjectID() int {
	next := 1
	for _, s := range d.Subjects {
		if s.ID >= next {
			next = s.ID + 1
		}
	}
	return next
}

// NextAbsenceID returns an id greater than every stored absence id.
func (d *Document) NextAbsenceID() int {
	next := 1
	for _, a := range d.Absences {
		if a.ID >= next {
			next = a.ID + 1
		}
	}
	return next
}

// RemoveAbsence deletes the first absence with the given id and reports
// whether one was found.
func (d *Document) RemoveAbsence(id int) bool {
	for i := range d.Absences {
		if d.Absences[i].ID == id {
			d.Absences = append(d.Absences[:i], d.Absences[i+1:]...)
			return true
		}
	}
	return false
}
