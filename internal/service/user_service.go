package service

import (
	"context"
	"strings"

	apperrors "ukdtimers/internal/errors"
	"ukdtimers/internal/model"
	"ukdtimers/internal/policy"
	"ukdtimers/internal/repository"
)

// NewUserInput is the admin form for creating a user.
type NewUserInput struct {
	Username string     `validate:"required"`
	Password string     `validate:"omitempty"`
	Fullname string     `validate:"omitempty"`
	Email    string     `validate:"omitempty,email"`
	Role     model.Role `validate:"required,oneof=ADMIN TEACHER STUDENT"`
	Room     string     `validate:"omitempty"`
}

// UserService manages users and logins.
type UserService interface {
	AddUser(ctx context.Context, s model.Session, in NewUserInput) (*model.User, error)
	UpdateAvatar(ctx context.Context, s model.Session, url string) error
	Authenticate(ctx context.Context, email, password string) (model.Session, error)
}

type userService struct {
	repo repository.DocumentRepository
}

// NewUserService creates a user service.
func NewUserService(repo repository.DocumentRepository) UserService {
	return &userService{repo: repo}
}

// AddUser appends a user built from in. Usernames and emails are not
// checked for uniqueness.
func (s *userService) AddUser(ctx context.Context, session model.Session, in NewUserInput) (*model.User, error) {
	if !policy.CanMutateUsersOrAbsences(session) {
		return nil, apperrors.ErrForbidden
	}
	in.Role = model.Role(strings.ToUpper(strings.TrimSpace(string(in.Role))))
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var created model.User
	err := s.repo.Update(ctx, func(doc *model.Document) error {
		created = model.User{
			ID:       doc.NextUserID(),
			Username: in.Username,
			Password: in.Password,
			Fullname: in.Fullname,
			Email:    in.Email,
			Role:     in.Role,
			Avatar:   model.DefaultAvatar,
			Room:     roomFor(in.Role, in.Room),
		}
		doc.Users = append(doc.Users, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func roomFor(role model.Role, room string) string {
	if role != model.RoleTeacher {
		return model.DefaultRoom
	}
	if room == "" {
		return model.UnknownTeacherRoom
	}
	return room
}

// UpdateAvatar replaces the session user's avatar. A session whose user no
// longer exists is a silent no-op.
func (s *userService) UpdateAvatar(ctx context.Context, session model.Session, url string) error {
	if !policy.CanMutateOwnAvatar(session) {
		return apperrors.ErrForbidden
	}
	return s.repo.Update(ctx, func(doc *model.Document) error {
		if u := doc.FindUser(session.UserID); u != nil {
			u.Avatar = url
		}
		return nil
	})
}

// Authenticate finds the first user with the given email and password.
// Passwords are compared in plaintext.
func (s *userService) Authenticate(ctx context.Context, email, password string) (model.Session, error) {
	doc := s.repo.Snapshot(ctx)
	for i := range doc.Users {
		u := &doc.Users[i]
		if u.Email == email && u.Password == password {
			return model.SessionFor(u), nil
		}
	}
	return model.Session{}, apperrors.ErrInvalidCredentials
}
