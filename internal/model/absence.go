package model

// AbsenceStatusActive is the only status ever written. Resolving an absence
// deletes it.
const AbsenceStatusActive = "active"

var absenceFields = []string{"id", "student_id", "subject_id", "deadline", "status"}

// Absence ("Н-ка") is a missed class a student still has to make up.
type Absence struct {
	ID        int    `json:"id"`
	StudentID int    `json:"student_id"`
	SubjectID int    `json:"subject_id"`
	Deadline  string `json:"deadline,omitempty"`
	Status    string `json:"status,omitempty"`

	Extra Extra `json:"-"`
}

// MarshalJSON implements json.Marshaler.
func (a Absence) MarshalJSON() ([]byte, error) {
	type plain Absence
	base, err := marshalJSON(plain(a))
	if err != nil {
		return nil, err
	}
	return mergeExtra(base, a.Extra)
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Absence) UnmarshalJSON(data []byte) error {
	type plain Absence
	var p plain
	extra, err := decodeRecord(data, &p, absenceFields...)
	if err != nil {
		return err
	}
	*a = Absence(p)
	a.Extra = extra
	return nil
}

// Clone returns a deep copy of the absence.
func (a Absence) Clone() Absence {
	a.Extra = a.Extra.Clone()
	return a
}
