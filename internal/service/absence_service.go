package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	apperrors "ukdtimers/internal/errors"
	"ukdtimers/internal/model"
	"ukdtimers/internal/policy"
	"ukdtimers/internal/repository"
)

// NewAbsenceInput is the form for recording an absence. Ids arrive as raw
// form strings.
type NewAbsenceInput struct {
	StudentID string
	SubjectID string
	Deadline  string
}

// AbsenceService records and resolves absences.
type AbsenceService interface {
	AddAbsence(ctx context.Context, s model.Session, in NewAbsenceInput) (*model.Absence, error)
	// ResolveAbsence deletes the absence with the given id. A missing id is
	// not an error.
	ResolveAbsence(ctx context.Context, s model.Session, rawID string) error
}

type absenceService struct {
	repo                 repository.DocumentRepository
	resolveRequiresStaff bool
}

// NewAbsenceService creates an absence service. With resolveRequiresStaff
// set only admins and teachers may resolve.
func NewAbsenceService(repo repository.DocumentRepository, resolveRequiresStaff bool) AbsenceService {
	return &absenceService{repo: repo, resolveRequiresStaff: resolveRequiresStaff}
}

func (s *absenceService) AddAbsence(ctx context.Context, session model.Session, in NewAbsenceInput) (*model.Absence, error) {
	if !policy.CanMutateUsersOrAbsences(session) {
		return nil, apperrors.ErrForbidden
	}
	studentID, err := parseID(in.StudentID)
	if err != nil {
		return nil, fmt.Errorf("student_id: %w", err)
	}
	subjectID, err := parseID(in.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("subject_id: %w", err)
	}

	var created model.Absence
	err = s.repo.Update(ctx, func(doc *model.Document) error {
		created = model.Absence{
			ID:        doc.NextAbsenceID(),
			StudentID: studentID,
			SubjectID: subjectID,
			Deadline:  in.Deadline,
			Status:    model.AbsenceStatusActive,
		}
		doc.Absences = append(doc.Absences, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *absenceService) ResolveAbsence(ctx context.Context, session model.Session, rawID string) error {
	if !policy.CanResolveAbsence(session, s.resolveRequiresStaff) {
		return apperrors.ErrForbidden
	}
	id, err := parseID(rawID)
	return s.repo.Update(ctx, func(doc *model.Document) error {
		if err == nil {
			doc.RemoveAbsence(id)
		}
		return nil
	})
}

func parseID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperrors.ErrInvalidInput, raw)
	}
	return id, nil
}
