// Package permission centralizes authorization decisions. Services call Can
// instead of performing ad-hoc role and ownership checks. The evaluator is
// pure: callers supply the ownership facts in Resource, it never fetches.
package permission

import (
	"github.com/google/uuid"

	"github.com/Franco-15/classroom-backend/internal/domain"
)

type Action int

const (
	ActionCreateClass Action = iota
	ActionViewClass
	ActionUpdateClass
	ActionDeleteClass
	ActionListAllClasses
	ActionViewClassStudents
	ActionRemoveStudent
	ActionJoinClass

	ActionCreateTask
	ActionUpdateTask
	ActionDeleteTask

	ActionSubmitTask
	ActionViewOwnSubmission
	ActionViewTaskSubmissions
	ActionViewSubmission
	ActionGradeSubmission

	ActionCreateAnnouncement
	ActionDeleteAnnouncement
	ActionCreateMaterial
	ActionDeleteMaterial
)

// Resource carries the ownership facts relevant to a decision. Only the
// fields the action consults need to be set.
type Resource struct {
	ClassTeacherID      uuid.UUID
	TaskAuthorID        uuid.UUID
	SubmissionStudentID uuid.UUID
	AnnouncementAuthor  uuid.UUID
	Enrolled            bool
}

// Can reports whether the principal may perform action on the resource.
// Deadline and input validation are lifecycle rules, not permissions, and are
// checked by the services after this gate.
func Can(p domain.Principal, action Action, r Resource) bool {
	switch action {
	case ActionCreateClass:
		return p.Role == domain.RoleTeacher || p.Role == domain.RoleAdmin

	case ActionViewClass:
		return p.Role == domain.RoleAdmin || p.ID == r.ClassTeacherID || r.Enrolled

	case ActionUpdateClass, ActionDeleteClass, ActionViewClassStudents, ActionRemoveStudent:
		return p.Role == domain.RoleAdmin || p.ID == r.ClassTeacherID

	case ActionListAllClasses:
		return p.Role == domain.RoleAdmin

	case ActionJoinClass:
		return p.Role == domain.RoleStudent

	case ActionCreateTask:
		if p.Role == domain.RoleAdmin {
			return true
		}
		return p.Role == domain.RoleTeacher && p.ID == r.ClassTeacherID

	case ActionUpdateTask, ActionDeleteTask:
		return p.Role == domain.RoleAdmin || p.ID == r.TaskAuthorID

	case ActionSubmitTask:
		return p.Role == domain.RoleStudent && r.Enrolled

	case ActionViewOwnSubmission:
		return p.ID == r.SubmissionStudentID

	case ActionViewTaskSubmissions, ActionGradeSubmission:
		return p.Role == domain.RoleAdmin || p.ID == r.ClassTeacherID

	case ActionViewSubmission:
		return p.Role == domain.RoleAdmin || p.ID == r.ClassTeacherID || p.ID == r.SubmissionStudentID

	case ActionCreateAnnouncement, ActionCreateMaterial, ActionDeleteMaterial:
		return p.Role == domain.RoleAdmin || p.ID == r.ClassTeacherID

	case ActionDeleteAnnouncement:
		return p.Role == domain.RoleAdmin || p.ID == r.ClassTeacherID || p.ID == r.AnnouncementAuthor
	}

	return false
}
