package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Franco-15/classroom-backend/internal/domain"
	"github.com/Franco-15/classroom-backend/internal/errdefs"
)

// MembershipService is the registry of who belongs to which class and who
// owns it. It only touches the enrollment relation; tasks and submissions
// are never mutated here.
type MembershipService struct {
	classRepo      ClassRepository
	enrollmentRepo EnrollmentRepository
}

func NewMembershipService(classRepo ClassRepository, enrollmentRepo EnrollmentRepository) *MembershipService {
	return &MembershipService{
		classRepo:      classRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

func (s *MembershipService) IsEnrolled(ctx context.Context, classID, studentID uuid.UUID) (bool, error) {
	return s.enrollmentRepo.Exists(ctx, classID, studentID)
}

// Owner returns the teacher id of the class.
func (s *MembershipService) Owner(ctx context.Context, classID uuid.UUID) (uuid.UUID, error) {
	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return uuid.Nil, err
	}
	return class.TeacherID, nil
}

// Enroll inserts the (class, student) pair. The storage-level unique
// constraint decides duplicates, so two concurrent joins cannot both win.
func (s *MembershipService) Enroll(ctx context.Context, classID, studentID uuid.UUID) error {
	if err := s.enrollmentRepo.Create(ctx, classID, studentID); err != nil {
		if errors.Is(err, errdefs.ErrAlreadyExists) {
			return errdefs.ErrAlreadyEnrolled
		}
		return fmt.Errorf("failed to enroll student: %w", err)
	}
	return nil
}

func (s *MembershipService) Unenroll(ctx context.Context, classID, studentID uuid.UUID) error {
	if err := s.enrollmentRepo.Delete(ctx, classID, studentID); err != nil {
		if errors.Is(err, errdefs.ErrNotFound) {
			return errdefs.ErrNotEnrolled
		}
		return fmt.Errorf("failed to unenroll student: %w", err)
	}
	return nil
}

func (s *MembershipService) ListStudents(ctx context.Context, classID uuid.UUID) ([]*domain.User, error) {
	return s.enrollmentRepo.ListStudents(ctx, classID)
}
