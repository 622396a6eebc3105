package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Franco-15/classroom-backend/internal/domain"
	"github.com/Franco-15/classroom-backend/internal/errdefs"
	"github.com/Franco-15/classroom-backend/internal/events"
	"github.com/Franco-15/classroom-backend/internal/permission"
)

const minSubmissionContentLength = 10

type SubmitTaskInput struct {
	TaskID  uuid.UUID
	Content string
	FileURL *string
}

type GradeSubmissionInput struct {
	SubmissionID uuid.UUID
	Grade        *float64
	Feedback     *string
}

// SubmissionService owns the Submission side of the assignment lifecycle:
// the SUBMITTED → GRADED state machine and its invariants.
type SubmissionService struct {
	submissionRepo SubmissionRepository
	taskRepo       TaskRepository
	classRepo      ClassRepository
	membership     *MembershipService
	publisher      EventPublisher
	clock          Clock
}

func NewSubmissionService(
	submissionRepo SubmissionRepository,
	taskRepo TaskRepository,
	classRepo ClassRepository,
	membership *MembershipService,
	publisher EventPublisher,
	clock Clock,
) *SubmissionService {
	return &SubmissionService{
		submissionRepo: submissionRepo,
		taskRepo:       taskRepo,
		classRepo:      classRepo,
		membership:     membership,
		publisher:      publisher,
		clock:          clock,
	}
}

// SubmitTask records the caller's submission for the task. The row keyed by
// (task, student) is created on first submit and overwritten on every later
// one, so a student never holds more than one submission per task.
// Resubmitting a graded submission resets it to SUBMITTED and clears the
// grade. The deadline is inclusive: a submission exactly at the due date is
// accepted.
func (s *SubmissionService) SubmitTask(ctx context.Context, input SubmitTaskInput) (*domain.Submission, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, input.TaskID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.membership.IsEnrolled(ctx, task.ClassID, p.ID)
	if err != nil {
		return nil, err
	}
	if !permission.Can(p, permission.ActionSubmitTask, permission.Resource{Enrolled: enrolled}) {
		if p.Role == domain.RoleStudent && !enrolled {
			return nil, errdefs.ErrNotEnrolled
		}
		return nil, errdefs.ErrPermissionDenied
	}

	now := s.clock.Now()
	if now.After(task.DueDate) {
		return nil, errdefs.ErrDeadlinePassed
	}

	content := strings.TrimSpace(input.Content)
	if len(content) < minSubmissionContentLength {
		return nil, fmt.Errorf("%w: content must be at least %d characters", errdefs.ErrValidation, minSubmissionContentLength)
	}

	submission := &domain.Submission{
		TaskID:      task.ID,
		StudentID:   p.ID,
		Content:     content,
		FileURL:     input.FileURL,
		SubmittedAt: now,
	}
	if err := s.submissionRepo.Upsert(ctx, submission); err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, events.Event{
		Type:         events.TypeSubmissionReceived,
		OccurredAt:   now,
		ClassID:      task.ClassID.String(),
		TaskID:       task.ID.String(),
		SubmissionID: submission.ID.String(),
		StudentID:    p.ID.String(),
	})

	return submission, nil
}

// GradeSubmission applies a grade and optional feedback, moving the
// submission to GRADED. Re-grading is allowed in any state, including after
// a later resubmission.
func (s *SubmissionService) GradeSubmission(ctx context.Context, input GradeSubmissionInput) (*domain.Submission, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	submission, err := s.submissionRepo.GetByID(ctx, input.SubmissionID)
	if err != nil {
		return nil, err
	}
	task, err := s.taskRepo.GetByID(ctx, submission.TaskID)
	if err != nil {
		return nil, err
	}
	class, err := s.classRepo.GetByID(ctx, task.ClassID)
	if err != nil {
		return nil, err
	}

	if !permission.Can(p, permission.ActionGradeSubmission, permission.Resource{ClassTeacherID: class.TeacherID}) {
		return nil, errdefs.ErrPermissionDenied
	}

	if input.Grade == nil {
		return nil, fmt.Errorf("%w: grade is required", errdefs.ErrInvalidGrade)
	}
	grade := *input.Grade
	if grade < 0 {
		return nil, fmt.Errorf("%w: grade cannot be negative", errdefs.ErrInvalidGrade)
	}
	if task.Points != nil && grade > *task.Points {
		return nil, fmt.Errorf("%w: grade cannot exceed %g points", errdefs.ErrInvalidGrade, *task.Points)
	}

	graded, err := s.submissionRepo.SetGrade(ctx, submission.ID, grade, input.Feedback, s.clock.Now())
	if err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, events.Event{
		Type:         events.TypeSubmissionGraded,
		OccurredAt:   s.clock.Now(),
		ClassID:      class.ID.String(),
		TaskID:       task.ID.String(),
		SubmissionID: graded.ID.String(),
		StudentID:    graded.StudentID.String(),
		TeacherID:    class.TeacherID.String(),
		Grade:        graded.Grade,
	})

	return graded, nil
}

// GetSubmission returns a submission to its student, the class teacher or an
// admin.
func (s *SubmissionService) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	submission, err := s.submissionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	task, err := s.taskRepo.GetByID(ctx, submission.TaskID)
	if err != nil {
		return nil, err
	}
	class, err := s.classRepo.GetByID(ctx, task.ClassID)
	if err != nil {
		return nil, err
	}

	res := permission.Resource{
		ClassTeacherID:      class.TeacherID,
		SubmissionStudentID: submission.StudentID,
	}
	if !permission.Can(p, permission.ActionViewSubmission, res) {
		return nil, errdefs.ErrPermissionDenied
	}
	return submission, nil
}

// ListTaskSubmissions returns every submission for the task, for the class
// teacher or an admin.
func (s *SubmissionService) ListTaskSubmissions(ctx context.Context, taskID uuid.UUID) ([]*domain.Submission, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	class, err := s.classRepo.GetByID(ctx, task.ClassID)
	if err != nil {
		return nil, err
	}

	if !permission.Can(p, permission.ActionViewTaskSubmissions, permission.Resource{ClassTeacherID: class.TeacherID}) {
		return nil, errdefs.ErrPermissionDenied
	}
	return s.submissionRepo.ListByTask(ctx, taskID)
}

// GetMySubmission returns the caller's own submission for the task, or
// not-found if they have not submitted yet.
func (s *SubmissionService) GetMySubmission(ctx context.Context, taskID uuid.UUID) (*domain.Submission, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.membership.IsEnrolled(ctx, task.ClassID, p.ID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, errdefs.ErrNotEnrolled
	}

	return s.submissionRepo.GetByTaskAndStudent(ctx, taskID, p.ID)
}
