package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ukdtimers/internal/auth"
	"ukdtimers/internal/model"
	"ukdtimers/internal/repository"
	"ukdtimers/internal/service"
	"ukdtimers/internal/sheets"
	"ukdtimers/internal/store"
)

const testDocument = `{
	"users": [
		{"id": 1, "username": "admin", "password": "root", "role": "ADMIN", "email": "admin@ukd.edu.ua"},
		{"id": 2, "username": "t1", "password": "pw", "role": "TEACHER", "fullname": "Іваненко", "room": "402"},
		{"id": 3, "username": "s1", "password": "pw", "role": "STUDENT", "fullname": "Петренко Олена"}
	],
	"subjects": [{"id": 1, "name": "Math", "teacher_id": 2}],
	"absences": [{"id": 1, "student_id": 3, "subject_id": 1, "deadline": "2025-01-01T00:00", "status": "active"}],
	"creators": []
}`

var (
	adminSession   = model.Session{UserID: 1, Role: model.RoleAdmin, Username: "admin"}
	studentSession = model.Session{UserID: 3, Role: model.RoleStudent, Username: "s1"}
)

type structValidator struct {
	v *validator.Validate
}

func (sv *structValidator) Validate(i interface{}) error {
	return sv.v.Struct(i)
}

type nopCache struct{}

func (nopCache) Get(context.Context, string) ([]byte, error)              { return nil, nil }
func (nopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

// MockSheetSource is a mock implementation of service.SheetSource.
type MockSheetSource struct {
	mock.Mock
}

func (m *MockSheetSource) FetchRows(ctx context.Context) ([]sheets.Row, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sheets.Row), args.Error(1)
}

type testServer struct {
	e      *echo.Echo
	mem    *store.MemoryStore
	sheets *MockSheetSource

	mu      sync.Mutex
	session model.Session
}

func newTestServer(t *testing.T, resolveRequiresStaff bool) *testServer {
	t.Helper()
	var doc model.Document
	require.NoError(t, json.Unmarshal([]byte(testDocument), &doc))

	ts := &testServer{mem: store.NewMemoryStore(&doc), sheets: new(MockSheetSource)}
	repo := repository.NewDocumentRepository(ts.mem)
	users := service.NewUserService(repo)
	sessions := auth.NewSessionManager(auth.NewJWTService("secret", time.Hour), auth.NewTokenStore(nopCache{}))

	authHandler := NewAuthHandler(users, sessions)
	userHandler := NewUserHandler(users)
	absenceHandler := NewAbsenceHandler(service.NewAbsenceService(repo, resolveRequiresStaff))
	dashboardHandler := NewDashboardHandler(service.NewDashboardService(repo))
	syncHandler := NewSyncHandler(service.NewSyncService(repo, ts.sheets))

	e := echo.New()
	e.Validator = &structValidator{v: validator.New()}
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ts.mu.Lock()
			s := ts.session
			ts.mu.Unlock()
			if s != (model.Session{}) {
				auth.SetSession(c, s)
			}
			return next(c)
		}
	})
	e.GET("/", dashboardHandler.Index)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.POST("/api/add_user", userHandler.AddUser)
	e.POST("/api/add_absence", absenceHandler.AddAbsence)
	e.GET("/api/resolve/:id", absenceHandler.ResolveAbsence)
	e.POST("/api/update_avatar", userHandler.UpdateAvatar)
	e.GET("/api/sync_sheets", syncHandler.SyncSheets)
	ts.e = e
	return ts
}

func (ts *testServer) as(s model.Session) *testServer {
	ts.mu.Lock()
	ts.session = s
	ts.mu.Unlock()
	return ts
}

func (ts *testServer) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) doc() *model.Document {
	return ts.mem.Load(context.Background())
}
