package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"ukdtimers/internal/model"
	"ukdtimers/internal/repository"
	"ukdtimers/internal/store"
)

var (
	adminSession   = model.Session{UserID: 1, Role: model.RoleAdmin, Username: "admin"}
	teacherSession = model.Session{UserID: 2, Role: model.RoleTeacher, Username: "t1"}
	studentSession = model.Session{UserID: 3, Role: model.RoleStudent, Username: "s1"}
)

const baseDocument = `{
	"users": [
		{"id": 1, "username": "admin", "password": "root", "role": "ADMIN", "fullname": "Адмін", "email": "admin@ukd.edu.ua"},
		{"id": 2, "username": "t1", "password": "pw", "role": "TEACHER", "fullname": "Іваненко", "room": "402"},
		{"id": 3, "username": "s1", "password": "pw", "role": "STUDENT", "fullname": "Петренко Олена"}
	],
	"subjects": [{"id": 1, "name": "Math", "teacher_id": 2}],
	"absences": [{"id": 1, "student_id": 3, "subject_id": 1, "deadline": "2025-01-01T00:00", "status": "active"}],
	"creators": [{"name": "Команда"}]
}`

// newTestRepo returns a repository over an in-memory copy of raw and the
// backing store so tests can inspect what was saved.
func newTestRepo(t *testing.T, raw string) (repository.DocumentRepository, *store.MemoryStore) {
	t.Helper()
	var doc model.Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	s := store.NewMemoryStore(&doc)
	return repository.NewDocumentRepository(s), s
}
