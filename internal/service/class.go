package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Franco-15/classroom-backend/internal/domain"
	"github.com/Franco-15/classroom-backend/internal/errdefs"
	"github.com/Franco-15/classroom-backend/internal/events"
	"github.com/Franco-15/classroom-backend/internal/permission"
)

type CreateClassInput struct {
	Name        string
	Description *string
	Subject     *string
}

type UpdateClassInput struct {
	Name        *string
	Description *string
	Subject     *string
}

type ClassService struct {
	classRepo  ClassRepository
	membership *MembershipService
	publisher  EventPublisher
	clock      Clock
}

func NewClassService(classRepo ClassRepository, membership *MembershipService, publisher EventPublisher, clock Clock) *ClassService {
	return &ClassService{
		classRepo:  classRepo,
		membership: membership,
		publisher:  publisher,
		clock:      clock,
	}
}

// CreateClass creates a class owned by the calling teacher with a fresh
// 6-character code. The code's uniqueness is enforced by the store; on a
// collision a new code is drawn, up to maxCodeAttempts times.
func (s *ClassService) CreateClass(ctx context.Context, input CreateClassInput) (*domain.Class, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !permission.Can(p, permission.ActionCreateClass, permission.Resource{}) {
		return nil, errdefs.ErrPermissionDenied
	}

	name := strings.TrimSpace(input.Name)
	if len(name) < 3 {
		return nil, fmt.Errorf("%w: name must be at least 3 characters", errdefs.ErrValidation)
	}
	if input.Description == nil || strings.TrimSpace(*input.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", errdefs.ErrValidation)
	}

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := generateClassCode()
		if err != nil {
			return nil, err
		}

		class := &domain.Class{
			Name:        name,
			Description: input.Description,
			Subject:     input.Subject,
			Code:        code,
			TeacherID:   p.ID,
		}
		err = s.classRepo.Create(ctx, class)
		if err == nil {
			return class, nil
		}
		if !errors.Is(err, errdefs.ErrAlreadyExists) {
			return nil, err
		}
	}

	return nil, errdefs.ErrCodeExhausted
}

// ListClasses returns the classes visible to the caller: owned classes for
// teachers and admins, enrolled classes for students.
func (s *ClassService) ListClasses(ctx context.Context) ([]*domain.Class, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if p.Role == domain.RoleStudent {
		return s.classRepo.ListByStudent(ctx, p.ID)
	}
	return s.classRepo.ListByTeacher(ctx, p.ID)
}

func (s *ClassService) ListAllClasses(ctx context.Context) ([]*domain.Class, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !permission.Can(p, permission.ActionListAllClasses, permission.Resource{}) {
		return nil, errdefs.ErrPermissionDenied
	}
	return s.classRepo.ListAll(ctx)
}

func (s *ClassService) GetClass(ctx context.Context, id uuid.UUID) (*domain.Class, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.membership.IsEnrolled(ctx, class.ID, p.ID)
	if err != nil {
		return nil, err
	}
	if !permission.Can(p, permission.ActionViewClass, permission.Resource{ClassTeacherID: class.TeacherID, Enrolled: enrolled}) {
		return nil, errdefs.ErrPermissionDenied
	}
	return class, nil
}

func (s *ClassService) UpdateClass(ctx context.Context, id uuid.UUID, input UpdateClassInput) (*domain.Class, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !permission.Can(p, permission.ActionUpdateClass, permission.Resource{ClassTeacherID: class.TeacherID}) {
		return nil, errdefs.ErrPermissionDenied
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if len(name) < 3 {
			return nil, fmt.Errorf("%w: name must be at least 3 characters", errdefs.ErrValidation)
		}
		class.Name = name
	}
	if input.Description != nil {
		class.Description = input.Description
	}
	if input.Subject != nil {
		class.Subject = input.Subject
	}

	if err := s.classRepo.Update(ctx, class); err != nil {
		return nil, err
	}
	return class, nil
}

// DeleteClass removes the class; enrollments, tasks, announcements and
// materials cascade at the store.
func (s *ClassService) DeleteClass(ctx context.Context, id uuid.UUID) error {
	p, err := principalFromContext(ctx)
	if err != nil {
		return err
	}

	class, err := s.classRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !permission.Can(p, permission.ActionDeleteClass, permission.Resource{ClassTeacherID: class.TeacherID}) {
		return errdefs.ErrPermissionDenied
	}

	return s.classRepo.Delete(ctx, id)
}

// JoinClass enrolls the calling student in the class matching the code.
// Codes are case-insensitive; an unknown code reports not-found.
func (s *ClassService) JoinClass(ctx context.Context, code string) (*domain.Class, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if !permission.Can(p, permission.ActionJoinClass, permission.Resource{}) {
		return nil, errdefs.ErrPermissionDenied
	}

	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != classCodeLength {
		return nil, fmt.Errorf("%w: code must be %d characters", errdefs.ErrValidation, classCodeLength)
	}

	class, err := s.classRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if err := s.membership.Enroll(ctx, class.ID, p.ID); err != nil {
		return nil, err
	}

	publish(ctx, s.publisher, events.Event{
		Type:       events.TypeStudentEnrolled,
		OccurredAt: s.clock.Now(),
		ClassID:    class.ID.String(),
		StudentID:  p.ID.String(),
		TeacherID:  class.TeacherID.String(),
	})

	return class, nil
}

func (s *ClassService) ListStudents(ctx context.Context, classID uuid.UUID) ([]*domain.User, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return nil, err
	}
	if !permission.Can(p, permission.ActionViewClassStudents, permission.Resource{ClassTeacherID: class.TeacherID}) {
		return nil, errdefs.ErrPermissionDenied
	}

	return s.membership.ListStudents(ctx, classID)
}

// RemoveStudent unenrolls the student; the student loses access to the
// class's tasks but their submissions are untouched.
func (s *ClassService) RemoveStudent(ctx context.Context, classID, studentID uuid.UUID) error {
	p, err := principalFromContext(ctx)
	if err != nil {
		return err
	}

	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return err
	}
	if !permission.Can(p, permission.ActionRemoveStudent, permission.Resource{ClassTeacherID: class.TeacherID}) {
		return errdefs.ErrPermissionDenied
	}

	if err := s.membership.Unenroll(ctx, classID, studentID); err != nil {
		return err
	}

	publish(ctx, s.publisher, events.Event{
		Type:       events.TypeStudentRemoved,
		OccurredAt: s.clock.Now(),
		ClassID:    classID.String(),
		StudentID:  studentID.String(),
		TeacherID:  class.TeacherID.String(),
	})

	return nil
}

func (s *ClassService) CountStudents(ctx context.Context, classID uuid.UUID) (int, error) {
	return s.classRepo.CountStudents(ctx, classID)
}
