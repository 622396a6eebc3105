package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Franco-15/classroom-backend/internal/domain"
	"github.com/Franco-15/classroom-backend/internal/errdefs"
	"github.com/Franco-15/classroom-backend/internal/events"
	"github.com/Franco-15/classroom-backend/internal/permission"
)

type CreateTaskInput struct {
	ClassID     uuid.UUID
	Title       string
	Description *string
	DueDate     time.Time
	Points      *float64
}

type UpdateTaskInput struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Points      *float64
}

// TaskService owns the Task side of the assignment lifecycle.
type TaskService struct {
	taskRepo   TaskRepository
	classRepo  ClassRepository
	membership *MembershipService
	publisher  EventPublisher
	clock      Clock
}

func NewTaskService(taskRepo TaskRepository, classRepo ClassRepository, membership *MembershipService, publisher EventPublisher, clock Clock) *TaskService {
	return &TaskService{
		taskRepo:   taskRepo,
		classRepo:  classRepo,
		membership: membership,
		publisher:  publisher,
		clock:      clock,
	}
}

// CreateTask creates an assignment in the class. The due date must be
// strictly in the future at the moment of the call.
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*domain.Task, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	class, err := s.classRepo.GetByID(ctx, input.ClassID)
	if err != nil {
		return nil, err
	}
	if !permission.Can(p, permission.ActionCreateTask, permission.Resource{ClassTeacherID: class.TeacherID}) {
		return nil, errdefs.ErrPermissionDenied
	}

	title := strings.TrimSpace(input.Title)
	if len(title) < 3 {
		return nil, fmt.Errorf("%w: title must be at least 3 characters", errdefs.ErrValidation)
	}
	if input.Description == nil || strings.TrimSpace(*input.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", errdefs.ErrValidation)
	}
	if err := s.validateDueDate(input.DueDate); err != nil {
		return nil, err
	}
	if input.Points != nil && *input.Points < 0 {
		return nil, fmt.Errorf("%w: points must be non-negative", errdefs.ErrValidation)
	}

	task := &domain.Task{
		ClassID:     class.ID,
		AuthorID:    p.ID,
		Title:       title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Points:      input.Points,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	dueDate := task.DueDate.Format(time.RFC3339)
	publish(ctx, s.publisher, events.Event{
		Type:       events.TypeTaskCreated,
		OccurredAt: s.clock.Now(),
		ClassID:    class.ID.String(),
		TaskID:     task.ID.String(),
		TeacherID:  class.TeacherID.String(),
		DueDate:    &dueDate,
	})

	return task, nil
}

// GetTask returns the task to the class teacher, an enrolled student or an
// admin.
func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeClassView(ctx, p, task.ClassID); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, classID uuid.UUID) ([]*domain.Task, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeClassView(ctx, p, classID); err != nil {
		return nil, err
	}
	return s.taskRepo.ListByClass(ctx, classID)
}

func (s *TaskService) authorizeClassView(ctx context.Context, p domain.Principal, classID uuid.UUID) error {
	class, err := s.classRepo.GetByID(ctx, classID)
	if err != nil {
		return err
	}
	enrolled, err := s.membership.IsEnrolled(ctx, classID, p.ID)
	if err != nil {
		return err
	}
	if !permission.Can(p, permission.ActionViewClass, permission.Resource{ClassTeacherID: class.TeacherID, Enrolled: enrolled}) {
		return errdefs.ErrPermissionDenied
	}
	return nil
}

// UpdateTask edits a task. A new due date must be strictly in the future; an
// already overdue task cannot have its deadline moved into the past.
func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, input UpdateTaskInput) (*domain.Task, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !permission.Can(p, permission.ActionUpdateTask, permission.Resource{TaskAuthorID: task.AuthorID}) {
		return nil, errdefs.ErrPermissionDenied
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if len(title) < 3 {
			return nil, fmt.Errorf("%w: title must be at least 3 characters", errdefs.ErrValidation)
		}
		task.Title = title
	}
	if input.Description != nil {
		task.Description = input.Description
	}
	if input.DueDate != nil {
		if err := s.validateDueDate(*input.DueDate); err != nil {
			return nil, err
		}
		task.DueDate = *input.DueDate
	}
	if input.Points != nil {
		if *input.Points < 0 {
			return nil, fmt.Errorf("%w: points must be non-negative", errdefs.ErrValidation)
		}
		task.Points = input.Points
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes the task and, via the store cascade, its submissions.
func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	p, err := principalFromContext(ctx)
	if err != nil {
		return err
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !permission.Can(p, permission.ActionDeleteTask, permission.Resource{TaskAuthorID: task.AuthorID}) {
		return errdefs.ErrPermissionDenied
	}

	return s.taskRepo.Delete(ctx, id)
}

func (s *TaskService) validateDueDate(dueDate time.Time) error {
	if !dueDate.After(s.clock.Now()) {
		return errdefs.ErrInvalidDueDate
	}
	return nil
}
