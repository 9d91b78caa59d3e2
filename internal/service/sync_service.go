package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	apperrors "ukdtimers/internal/errors"
	"ukdtimers/internal/model"
	"ukdtimers/internal/policy"
	"ukdtimers/internal/repository"
	"ukdtimers/internal/sheets"
)

const (
	importedPassword = "123"
	importDeadlineIn = 14 * 24 * time.Hour
	importDateLayout = "2006-01-02"
	// importDeadlineTime pins imported deadlines to the end of the day.
	importDeadlineTime = "T23:59"
)

// importedStudentExtra is attached to every student created by an import.
var importedStudentExtra = map[string]string{
	"course":      "1",
	"specialty":   "ІПЗ",
	"institution": "Університет",
}

// SheetSource provides the attendance rows of the group sheet.
type SheetSource interface {
	FetchRows(ctx context.Context) ([]sheets.Row, error)
}

// SyncResult is the outcome of a sheet import.
type SyncResult struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	StudentsAdded   int    `json:"-"`
	AbsencesCreated int    `json:"-"`
}

// SyncService imports students and absences from the attendance sheet.
type SyncService interface {
	SyncSheets(ctx context.Context, s model.Session) (SyncResult, error)
}

type syncService struct {
	repo   repository.DocumentRepository
	source SheetSource
	now    func() time.Time
}

// NewSyncService creates a sync service reading from source.
func NewSyncService(repo repository.DocumentRepository, source SheetSource) SyncService {
	return &syncService{repo: repo, source: source, now: time.Now}
}

// SyncSheets pulls the sheet and merges it into the document. Failures are
// reported in the result message as well as the returned error.
func (s *syncService) SyncSheets(ctx context.Context, session model.Session) (SyncResult, error) {
	if !policy.CanMutateUsersOrAbsences(session) {
		return SyncResult{Message: "Відмовлено"}, apperrors.ErrForbidden
	}

	rows, err := s.source.FetchRows(ctx)
	if err != nil {
		log.Printf("sync: fetch sheet: %v", err)
		var statusErr *sheets.StatusError
		if errors.As(err, &statusErr) {
			return SyncResult{Message: fmt.Sprintf("Помилка доступу: %d", statusErr.StatusCode)},
				fmt.Errorf("%w: %v", apperrors.ErrSheetUnavailable, err)
		}
		return SyncResult{Message: fmt.Sprintf("Помилка: %v", err)},
			fmt.Errorf("%w: %v", apperrors.ErrSheetUnavailable, err)
	}

	var result SyncResult
	deadline := s.now().Add(importDeadlineIn).Format(importDateLayout) + importDeadlineTime
	err = s.repo.Update(ctx, func(doc *model.Document) error {
		if len(doc.Subjects) == 0 {
			return apperrors.ErrNoSubjects
		}
		subjectID := doc.Subjects[0].ID

		for _, row := range rows {
			student := findByFullname(doc, row.Fullname)
			if student == nil {
				doc.Users = append(doc.Users, importedStudent(doc, row.Fullname))
				student = &doc.Users[len(doc.Users)-1]
				result.StudentsAdded++
			}
			if row.Absences == 0 || hasAbsence(doc, student.ID, subjectID) {
				continue
			}
			doc.Absences = append(doc.Absences, model.Absence{
				ID:        doc.NextAbsenceID(),
				StudentID: student.ID,
				SubjectID: subjectID,
				Deadline:  deadline,
				Status:    model.AbsenceStatusActive,
			})
			result.AbsencesCreated++
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNoSubjects) {
			return SyncResult{Message: "Помилка: немає жодного предмета"}, err
		}
		return SyncResult{Message: fmt.Sprintf("Помилка: %v", err)}, err
	}

	result.Success = true
	result.Message = fmt.Sprintf("Синхронізація успішна! Додано студентів: %d, виявлено Н: %d.", result.StudentsAdded, result.AbsencesCreated)
	log.Printf("sync: %d students added, %d absences created", result.StudentsAdded, result.AbsencesCreated)
	return result, nil
}

func findByFullname(doc *model.Document, fullname string) *model.User {
	for i := range doc.Users {
		if doc.Users[i].Fullname == fullname {
			return &doc.Users[i]
		}
	}
	return nil
}

func hasAbsence(doc *model.Document, studentID, subjectID int) bool {
	for _, a := range doc.Absences {
		if a.StudentID == studentID && a.SubjectID == subjectID {
			return true
		}
	}
	return false
}

// importedStudent numbers generated usernames by the user count at creation.
func importedStudent(doc *model.Document, fullname string) model.User {
	username := fmt.Sprintf("std_%d", len(doc.Users))
	extra := make(model.Extra, len(importedStudentExtra))
	for k, v := range importedStudentExtra {
		raw, _ := json.Marshal(v)
		extra[k] = raw
	}
	return model.User{
		ID:       doc.NextUserID(),
		Username: username,
		Password: importedPassword,
		Fullname: fullname,
		Email:    username + "@" + model.EmailDomain,
		Role:     model.RoleStudent,
		Avatar:   model.DefaultAvatar,
		Extra:    extra,
	}
}
