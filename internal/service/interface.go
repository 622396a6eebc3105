package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Franco-15/classroom-backend/internal/domain"
	"github.com/Franco-15/classroom-backend/internal/events"
)

// Repository ports. Services depend on these instead of concrete store
// types; internal/repository provides the postgres implementations and tests
// substitute mocks.

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ClassRepository interface {
	Create(ctx context.Context, class *domain.Class) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Class, error)
	GetByCode(ctx context.Context, code string) (*domain.Class, error)
	ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*domain.Class, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Class, error)
	ListAll(ctx context.Context) ([]*domain.Class, error)
	Update(ctx context.Context, class *domain.Class) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountStudents(ctx context.Context, classID uuid.UUID) (int, error)
}

type EnrollmentRepository interface {
	Create(ctx context.Context, classID, studentID uuid.UUID) error
	Delete(ctx context.Context, classID, studentID uuid.UUID) error
	Exists(ctx context.Context, classID, studentID uuid.UUID) (bool, error)
	ListStudents(ctx context.Context, classID uuid.UUID) ([]*domain.User, error)
}

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListByClass(ctx context.Context, classID uuid.UUID) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type SubmissionRepository interface {
	Upsert(ctx context.Context, submission *domain.Submission) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	GetByTaskAndStudent(ctx context.Context, taskID, studentID uuid.UUID) (*domain.Submission, error)
	ListByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.Submission, error)
	SetGrade(ctx context.Context, id uuid.UUID, grade float64, feedback *string, gradedAt time.Time) (*domain.Submission, error)
}

type AnnouncementRepository interface {
	Create(ctx context.Context, a *domain.Announcement) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Announcement, error)
	ListByClass(ctx context.Context, classID uuid.UUID) ([]*domain.Announcement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type MaterialRepository interface {
	Create(ctx context.Context, m *domain.Material) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Material, error)
	ListByClass(ctx context.Context, classID uuid.UUID) ([]*domain.Material, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Clock supplies the current time for deadline checks and grading
// timestamps; tests inject a fixed one.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// EventPublisher receives lifecycle events. Publishing is fire-and-forget:
// services log failures and never fail the request over them.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}
