package service

import (
	"context"

	"ukdtimers/internal/model"
	"ukdtimers/internal/projection"
	"ukdtimers/internal/repository"
)

// DashboardService assembles the home page.
type DashboardService interface {
	Dashboard(ctx context.Context, s model.Session) model.Dashboard
}

type dashboardService struct {
	repo repository.DocumentRepository
}

// NewDashboardService creates a dashboard service.
func NewDashboardService(repo repository.DocumentRepository) DashboardService {
	return &dashboardService{repo: repo}
}

// Dashboard projects absences only when the session user still exists.
func (s *dashboardService) Dashboard(ctx context.Context, session model.Session) model.Dashboard {
	doc := s.repo.Snapshot(ctx)

	out := model.Dashboard{
		Session:       session,
		UserAbsences:  []model.AbsenceView{},
		AllUsers:      make([]model.UserView, 0, len(doc.Users)),
		AllSubjects:   doc.Subjects,
		Creators:      doc.Creators,
		TotalAbsences: len(doc.Absences),
		TotalSubjects: len(doc.Subjects),
	}
	for _, u := range doc.Users {
		out.AllUsers = append(out.AllUsers, model.NewUserView(u))
	}

	if session.Authenticated() {
		if u := doc.FindUser(session.UserID); u != nil {
			view := model.NewUserView(*u)
			out.CurrentUser = &view
			out.UserAbsences = projection.Absences(doc, session)
		}
	}
	return out
}
