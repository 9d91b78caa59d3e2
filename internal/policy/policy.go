// Package policy decides what a session may see and change.
package policy

import "ukdtimers/internal/model"

// CanViewAbsence reports whether s may see a. Staff see every absence,
// students only their own, anonymous visitors nothing.
func CanViewAbsence(s model.Session, a model.Absence) bool {
	if !s.Authenticated() {
		return false
	}
	return s.Role.IsStaff() || a.StudentID == s.UserID
}

// CanMutateUsersOrAbsences gates creating users and absences.
func CanMutateUsersOrAbsences(s model.Session) bool {
	return s.Role.IsStaff()
}

// CanMutateOwnAvatar reports whether s may change its own avatar.
func CanMutateOwnAvatar(s model.Session) bool {
	return s.Authenticated()
}

// CanResolveAbsence gates resolving. Resolution has historically been open to
// anyone, including anonymous callers; gated restricts it to staff.
func CanResolveAbsence(s model.Session, gated bool) bool {
	if !gated {
		return true
	}
	return CanMutateUsersOrAbsences(s)
}
