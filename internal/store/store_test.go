package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ukdtimers/internal/model"
)

func TestMigrateUser(t *testing.T) {
	tests := []struct {
		name string
		user model.User
		want model.User
	}{
		{
			name: "fills every missing field",
			user: model.User{ID: 1, Username: "t1", Role: model.RoleTeacher},
			want: model.User{
				ID: 1, Username: "t1", Role: model.RoleTeacher,
				Email: "t1@ukd.edu.ua", Avatar: model.DefaultAvatar, Room: model.DefaultRoom,
			},
		},
		{
			name: "keeps present values",
			user: model.User{ID: 2, Username: "s", Email: "s@example.com", Avatar: "me.png", Room: "402"},
			want: model.User{ID: 2, Username: "s", Email: "s@example.com", Avatar: "me.png", Room: "402"},
		},
		{
			name: "fills only the gaps",
			user: model.User{ID: 3, Username: "mix", Email: "mix@example.com"},
			want: model.User{ID: 3, Username: "mix", Email: "mix@example.com", Avatar: model.DefaultAvatar, Room: model.DefaultRoom},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := tt.user
			MigrateUser(&u)
			assert.Equal(t, tt.want, u)
			assert.NotEmpty(t, u.Email)
			assert.NotEmpty(t, u.Avatar)
			assert.NotEmpty(t, u.Room)
		})
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	doc := model.NewDocument()
	doc.Users = []model.User{
		{ID: 1, Username: "a"},
		{ID: 2, Username: "b", Room: "101"},
	}

	Migrate(doc)
	once := doc.Clone()
	Migrate(doc)

	assert.Equal(t, once, doc)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(Options{Backend: BackendFile, FilePath: dir + "/db.json"})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	s, err = Open(Options{Backend: BackendMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = Open(Options{Backend: BackendBolt, BoltPath: dir + "/db.bolt"})
	require.NoError(t, err)
	assert.IsType(t, &BoltStore{}, s)
	require.NoError(t, s.Close())

	_, err = Open(Options{Backend: "csv"})
	assert.Error(t, err)
}

func TestMemoryStore_CopiesOnLoadAndSave(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(nil)

	doc := s.Load(ctx)
	doc.Absences = append(doc.Absences, model.Absence{ID: 1})
	assert.Empty(t, s.Load(ctx).Absences, "unsaved changes leaked into the store")

	require.NoError(t, s.Save(ctx, doc))
	doc.Absences[0].ID = 42
	assert.Equal(t, 1, s.Load(ctx).Absences[0].ID)
}
