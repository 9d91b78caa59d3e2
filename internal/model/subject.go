package model

var subjectFields = []string{"id", "name", "teacher_id"}

// Subject is a course taught by one teacher.
type Subject struct {
	ID        int    `json:"id"`
	Name      string `json:"name,omitempty"`
	TeacherID int    `json:"teacher_id"`

	Extra Extra `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (s Subject) MarshalJSON() ([]byte, error) {
	type plain Subject
	base, err := marshalJSON(plain(s))
	if err != nil {
		return nil, err
	}
	return mergeExtra(base, s.Extra)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Subject) UnmarshalJSON(data []byte) error {
	type plain Subject
	var p plain
	extra, err := decodeRecord(data, &p, subjectFields...)
	if err != nil {
		return err
	}
	*s = Subject(p)
	s.Extra = extra
	return nil
}

// Clone returns a deep copy of the subject.
func (s Subject) Clone() Subject {
	s.Extra = s.Extra.Clone()
	return s
}
