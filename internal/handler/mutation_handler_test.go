package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ukdtimers/internal/model"
	"ukdtimers/internal/sheets"
)

func TestUserHandler_AddUser(t *testing.T) {
	form := url.Values{"username": {"t2"}, "password": {"pw"}, "fullname": {"Коваль"}, "role": {"TEACHER"}, "room": {"305"}}

	t.Run("admin", func(t *testing.T) {
		ts := newTestServer(t, false).as(adminSession)
		rec := ts.postForm("/api/add_user", form)

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/?tab=admin", rec.Header().Get("Location"))
		doc := ts.doc()
		require.Len(t, doc.Users, 4)
		assert.Equal(t, "305", doc.Users[3].Room)
	})

	t.Run("student is sent home", func(t *testing.T) {
		ts := newTestServer(t, false).as(studentSession)
		rec := ts.postForm("/api/add_user", form)

		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Len(t, ts.doc().Users, 3)
	})

	t.Run("invalid role", func(t *testing.T) {
		ts := newTestServer(t, false).as(adminSession)
		rec := ts.postForm("/api/add_user", url.Values{"username": {"x"}, "role": {"DEAN"}})

		assert.Equal(t, "/?tab=admin&error=invalid_input", rec.Header().Get("Location"))
		assert.Len(t, ts.doc().Users, 3)
	})
}

func TestUserHandler_UpdateAvatar(t *testing.T) {
	t.Run("own avatar", func(t *testing.T) {
		ts := newTestServer(t, false).as(studentSession)
		rec := ts.postForm("/api/update_avatar", url.Values{"url": {"https://img/a.png"}})

		assert.Equal(t, "/?tab=profile", rec.Header().Get("Location"))
		assert.Equal(t, "https://img/a.png", ts.doc().FindUser(3).Avatar)
	})

	t.Run("anonymous", func(t *testing.T) {
		ts := newTestServer(t, false)
		rec := ts.postForm("/api/update_avatar", url.Values{"url": {"x"}})

		assert.Equal(t, "/", rec.Header().Get("Location"))
	})
}

func TestAbsenceHandler_AddAbsence(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		ts := newTestServer(t, false).as(adminSession)
		rec := ts.postForm("/api/add_absence", url.Values{"student_id": {"3"}, "subject_id": {"1"}, "deadline": {"2025-05-01T10:00"}})

		assert.Equal(t, "/?tab=timers", rec.Header().Get("Location"))
		doc := ts.doc()
		require.Len(t, doc.Absences, 2)
		assert.Equal(t, model.Absence{ID: 2, StudentID: 3, SubjectID: 1, Deadline: "2025-05-01T10:00", Status: "active"}, doc.Absences[1])
	})

	t.Run("malformed id", func(t *testing.T) {
		ts := newTestServer(t, false).as(adminSession)
		rec := ts.postForm("/api/add_absence", url.Values{"student_id": {"abc"}, "subject_id": {"1"}})

		assert.Equal(t, "/?tab=timers&error=invalid_input", rec.Header().Get("Location"))
		assert.Len(t, ts.doc().Absences, 1)
	})

	t.Run("student is sent home", func(t *testing.T) {
		ts := newTestServer(t, false).as(studentSession)
		rec := ts.postForm("/api/add_absence", url.Values{"student_id": {"3"}, "subject_id": {"1"}})

		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.Len(t, ts.doc().Absences, 1)
	})
}

func TestAbsenceHandler_ResolveAbsence(t *testing.T) {
	t.Run("anonymous resolves when ungated", func(t *testing.T) {
		ts := newTestServer(t, false)
		rec := ts.get("/api/resolve/1")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
		assert.Empty(t, ts.doc().Absences)
	})

	t.Run("unknown id", func(t *testing.T) {
		ts := newTestServer(t, false).as(adminSession)
		rec := ts.get("/api/resolve/99")

		assert.JSONEq(t, `{"success":true}`, rec.Body.String())
		assert.Len(t, ts.doc().Absences, 1)
	})

	t.Run("gated denies students", func(t *testing.T) {
		ts := newTestServer(t, true).as(studentSession)
		rec := ts.get("/api/resolve/1")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.JSONEq(t, `{"success":false}`, rec.Body.String())
		assert.Len(t, ts.doc().Absences, 1)
	})
}

func TestDashboardHandler_Index(t *testing.T) {
	ts := newTestServer(t, false).as(studentSession)

	rec := ts.get("/")

	require.Equal(t, http.StatusOK, rec.Code)
	var d model.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	require.NotNil(t, d.CurrentUser)
	assert.Equal(t, 3, d.CurrentUser.ID)
	require.Len(t, d.UserAbsences, 1)
	assert.Equal(t, "Math", d.UserAbsences[0].SubjectName)
	assert.NotContains(t, rec.Body.String(), `"password"`)
}

func TestSyncHandler_SyncSheets(t *testing.T) {
	t.Run("staff", func(t *testing.T) {
		ts := newTestServer(t, false).as(adminSession)
		ts.sheets.On("FetchRows", mock.Anything).Return([]sheets.Row{{Fullname: "Нова Студентка", Absences: 1}}, nil)

		rec := ts.get("/api/sync_sheets")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"message":"Синхронізація успішна! Додано студентів: 1, виявлено Н: 1."}`, rec.Body.String())
	})

	t.Run("student", func(t *testing.T) {
		ts := newTestServer(t, false).as(studentSession)

		rec := ts.get("/api/sync_sheets")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":false,"message":"Відмовлено"}`, rec.Body.String())
		ts.sheets.AssertNotCalled(t, "FetchRows", mock.Anything)
	})
}
