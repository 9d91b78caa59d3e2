package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_PreservesUnknownFields(t *testing.T) {
	raw := `{
		"users": [{"id": 1, "username": "std_1", "role": "STUDENT", "course": "1", "specialty": "ІПЗ"}],
		"subjects": [{"id": 1, "name": "Math", "teacher_id": 2, "hours": 30}],
		"absences": [{"id": 1, "student_id": 1, "subject_id": 1, "status": "active", "note": "<b>late</b>"}],
		"creators": [{"name": "Марія", "role": "UI/UX Designer"}],
		"version": 3
	}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, json.RawMessage(`"1"`), doc.Users[0].Extra["course"])
	assert.Equal(t, json.RawMessage(`30`), doc.Subjects[0].Extra["hours"])
	assert.Equal(t, json.RawMessage(`3`), doc.Extra["version"])

	out, err := json.Marshal(doc)
	require.NoError(t, err)

	var want, got map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &want))
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, want, got)
	assert.Contains(t, string(out), "<b>late</b>")
}

func TestDocument_KeepsEmptyAndMistypedValues(t *testing.T) {
	raw := `{
		"users": [{"id": 1, "username": "std_1", "password": "", "fullname": "", "role": "STUDENT"}],
		"subjects": [{"id": 1, "name": "", "teacher_id": 1}],
		"absences": [
			{"id": 1, "student_id": null, "subject_id": 1, "deadline": "", "status": "active"},
			{"id": 2, "student_id": "7", "subject_id": 1.5, "status": "active"}
		],
		"creators": []
	}`

	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, 0, doc.Absences[0].StudentID)
	assert.Equal(t, 1, doc.Absences[0].SubjectID)
	assert.Equal(t, 0, doc.Absences[1].StudentID)
	assert.Equal(t, 0, doc.Absences[1].SubjectID)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestUser_SetFieldReplacesKeptEmptyValue(t *testing.T) {
	var u User
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "username": "t1", "room": "", "role": "TEACHER"}`), &u))

	u.Room = "204"
	out, err := json.Marshal(u)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 1, "username": "t1", "room": "204", "role": "TEACHER"}`, string(out))
}

func TestDocument_NullCollectionsBecomeEmpty(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(`{"users": null}`), &doc))

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"users": [], "subjects": [], "absences": [], "creators": []}`, string(out))
}

func TestDocument_NextIDsSkipPastDeletedRecords(t *testing.T) {
	doc := NewDocument()
	assert.Equal(t, 1, doc.NextAbsenceID())

	doc.Absences = []Absence{{ID: 1}, {ID: 3}}
	assert.Equal(t, 4, doc.NextAbsenceID())

	doc.Users = []User{{ID: 5}, {ID: 2}}
	assert.Equal(t, 6, doc.NextUserID())
}

func TestDocument_RemoveAbsence(t *testing.T) {
	doc := NewDocument()
	doc.Absences = []Absence{{ID: 1}, {ID: 2}, {ID: 2}, {ID: 3}}

	assert.True(t, doc.RemoveAbsence(2))
	assert.Equal(t, []int{1, 2, 3}, absenceIDs(doc))

	assert.False(t, doc.RemoveAbsence(99))
	assert.Len(t, doc.Absences, 3)
}

func TestDocument_CloneIsIndependent(t *testing.T) {
	doc := NewDocument()
	doc.Users = []User{{ID: 1, Avatar: "a", Extra: Extra{"course": json.RawMessage(`"1"`)}}}

	clone := doc.Clone()
	clone.Users[0].Avatar = "b"
	clone.Users[0].Extra["course"] = json.RawMessage(`"2"`)

	assert.Equal(t, "a", doc.Users[0].Avatar)
	assert.Equal(t, json.RawMessage(`"1"`), doc.Users[0].Extra["course"])
}

func absenceIDs(doc *Document) []int {
	ids := make([]int, 0, len(doc.Absences))
	for _, a := range doc.Absences {
		ids = append(ids, a.ID)
	}
	return ids
}
