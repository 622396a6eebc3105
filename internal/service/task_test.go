package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Franco-15/classroom-backend/internal/domain"
	"github.com/Franco-15/classroom-backend/internal/errdefs"
	"github.com/Franco-15/classroom-backend/internal/service"
	"github.com/Franco-15/classroom-backend/internal/service/mocks"
)

var taskTestNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func setupTask(t *testing.T) (
	*service.TaskService,
	*mocks.MockTaskRepository,
	*mocks.MockClassRepository,
	*mocks.MockEnrollmentRepository,
	*mocks.MockEventPublisher,
) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	taskRepo := mocks.NewMockTaskRepository(ctrl)
	classRepo := mocks.NewMockClassRepository(ctrl)
	enrollmentRepo := mocks.NewMockEnrollmentRepository(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)

	membership := service.NewMembershipService(classRepo, enrollmentRepo)
	svc := service.NewTaskService(taskRepo, classRepo, membership, publisher, fixedClock{now: taskTestNow})

	return svc, taskRepo, classRepo, enrollmentRepo, publisher
}

// ── CreateTask ──────────────────────────────────────────────────────

func TestCreateTask(t *testing.T) {
	teacherID := uuid.New()
	classID := uuid.New()
	class := &domain.Class{ID: classID, TeacherID: teacherID}

	valid := service.CreateTaskInput{
		ClassID:     classID,
		Title:       "Essay on polynomials",
		Description: strptr("Write two pages"),
		DueDate:     taskTestNow.Add(72 * time.Hour),
		Points:      f64ptr(100),
	}

	t.Run("Success", func(t *testing.T) {
		svc, taskRepo, classRepo, _, publisher := setupTask(t)
		ctx := principalCtx(teacherID, domain.RoleTeacher)

		classRepo.EXPECT().GetByID(gomock.Any(), classID).Return(class, nil)
		taskRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		result, err := svc.CreateTask(ctx, valid)
		require.NoError(t, err)
		assert.Equal(t, teacherID, result.AuthorID)
		assert.Equal(t, classID, result.ClassID)
	})

	t.Run("DueDateInPast", func(t *testing.T) {
		svc, _, classRepo, _, _ := setupTask(t)
		ctx := principalCtx(teacherID, domain.RoleTeacher)

		classRepo.EXPECT().GetByID(gomock.Any(), classID).Return(class, nil)

		input := valid
		input.DueDate = taskTestNow.Add(-time.Hour)
		_, err := svc.CreateTask(ctx, input)
		assert.ErrorIs(t, err, errdefs.ErrInvalidDueDate)
	})

	t.Run("DueDateExactlyNow", func(t *testing.T) {
		svc, _, classRepo, _, _ := setupTask(t)
		ctx := principalCtx(teacherID, domain.RoleTeacher)

		classRepo.EXPECT().GetByID(gomock.Any(), classID).Return(class, nil)

		input := valid
		input.DueDate = taskTestNow
		_, err := svc.CreateTask(ctx, input)
		assert.ErrorIs(t, err, errdefs.ErrInvalidDueDate)
	})

	t.Run("NegativePoints", func(t *testing.T) {
		svc, _, classRepo, _, _ := setupTask(t)
		ctx := principalCtx(teacherID, domain.RoleTeacher)

		classRepo.EXPECT().GetByID(gomock.Any(), classID).Return(class, nil)

		input := valid
		input.Points = f64ptr(-5)
		_, err := svc.CreateTask(ctx, input)
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("TitleTooShort", func(t *testing.T) {
		svc, _, classRepo, _, _ := setupTask(t)
		ctx := principalCtx(teacherID, domain.RoleTeacher)

		classRepo.EXPECT().GetByID(gomock.Any(), classID).Return(class, nil)

		input := valid
		input.Title = "ab"
		_, err := svc.CreateTask(ctx, input)
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("OtherTeacherForbidden", func(t *testing.T) {
		svc, _, classRepo, _, _ := setupTask(t)
		ctx := principalCtx(uuid.New(), domain.RoleTeacher)

		classRepo.EXPECT().GetByID(gomock.Any(), classID).Return(class, nil)

		_, err := svc.CreateTask(ctx, valid)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("StudentForbidden", func(t *testing.T) {
		svc, _, classRepo, _, _ := setupTask(t)
		ctx := principalCtx(uuid.New(), domain.RoleStudent)

		classRepo.EXPECT().GetByID(gomock.Any(), classID).Return(class, nil)

		_, err := svc.CreateTask(ctx, valid)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("ClassNotFound", func(t *testing.T) {
		svc, _, classRepo, _, _ := setupTask(t)
		ctx := principalCtx(teacherID, domain.RoleTeacher)

		classRepo.EXPECT().GetByID(gomock.Any(), classID).Return(nil, errdefs.ErrNotFound)

		_, err := svc.CreateTask(ctx, valid)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})
}

// ── UpdateTask ──────────────────────────────────────────────────────

func TestUpdateTask(t *testing.T) {
	authorID := uuid.New()
	taskID := uuid.New()

	newTask := func() *domain.Task {
		return &domain.Task{
			ID:       taskID,
			AuthorID: authorID,
			Title:    "Original title",
			DueDate:  taskTestNow.Add(48 * time.Hour),
		}
	}

	t.Run("Success", func(t *testing.T) {
		svc, taskRepo, _, _, _ := setupTask(t)
		ctx := principalCtx(authorID, domain.RoleTeacher)

		taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(newTask(), nil)
		taskRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		result, err := svc.UpdateTask(ctx, taskID, service.UpdateTaskInput{
			Title: strptr("Revised title"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Revised title", result.Title)
	})

	t.Run("NewDueDateInPast", func(t *testing.T) {
		svc, taskRepo, _, _, _ := setupTask(t)
		ctx := principalCtx(authorID, domain.RoleTeacher)

		taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(newTask(), nil)

		past := taskTestNow.Add(-time.Hour)
		_, err := svc.UpdateTask(ctx, taskID, service.UpdateTaskInput{DueDate: &past})
		assert.ErrorIs(t, err, errdefs.ErrInvalidDueDate)
	})

	t.Run("NonAuthorForbidden", func(t *testing.T) {
		svc, taskRepo, _, _, _ := setupTask(t)
		ctx := principalCtx(uuid.New(), domain.RoleTeacher)

		taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(newTask(), nil)

		_, err := svc.UpdateTask(ctx, taskID, service.UpdateTaskInput{Title: strptr("Hijacked")})
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("AdminCanUpdate", func(t *testing.T) {
		svc, taskRepo, _, _, _ := setupTask(t)
		ctx := principalCtx(uuid.New(), domain.RoleAdmin)

		taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(newTask(), nil)
		taskRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		_, err := svc.UpdateTask(ctx, taskID, service.UpdateTaskInput{Title: strptr("Admin edit")})
		require.NoError(t, err)
	})
}

// ── DeleteTask / ListTasks ──────────────────────────────────────────

func TestDeleteTask(t *testing.T) {
	authorID := uuid.New()
	taskID := uuid.New()
	task := &domain.Task{ID: taskID, AuthorID: authorID}

	t.Run("Success", func(t *testing.T) {
		svc, taskRepo, _, _, _ := setupTask(t)
		ctx := principalCtx(authorID, domain.RoleTeacher)

		taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
		taskRepo.EXPECT().Delete(gomock.Any(), taskID).Return(nil)

		err := svc.DeleteTask(ctx, taskID)
		require.NoError(t, err)
	})

	t.Run("NonAuthorForbidden", func(t *testing.T) {
		svc, taskRepo, _, _, _ := setupTask(t)
		ctx := principalCtx(uuid.New(), domain.RoleTeacher)

		taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)

		err := svc.DeleteTask(ctx, taskID)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})
}

func TestListTasks(t *testing.T) {
	classID := uuid.New()

	t.Run("EnrolledStudent", func(t *testing.T) {
		svc, taskRepo, classRepo, enrollmentRepo, _ := setupTask(t)
		studentID := uuid.New()
		ctx := principalCtx(studentID, domain.RoleStudent)

		classRepo.EXPECT().GetByID(gomock.Any(), classID).Return(&domain.Class{ID: classID, TeacherID: uuid.New()}, nil)
		enrollmentRepo.EXPECT().Exists(gomock.Any(), classID, studentID).Return(true, nil)
		taskRepo.EXPECT().ListByClass(gomock.Any(), classID).Return([]*domain.Task{{ID: uuid.New()}}, nil)

		result, err := svc.ListTasks(ctx, classID)
		require.NoError(t, err)
		assert.Len(t, result, 1)
	})

	t.Run("OutsiderForbidden", func(t *testing.T) {
		svc, _, classRepo, enrollmentRepo, _ := setupTask(t)
		outsider := uuid.New()
		ctx := principalCtx(outsider, domain.RoleStudent)

		classRepo.EXPECT().GetByID(gomock.Any(), classID).Return(&domain.Class{ID: classID, TeacherID: uuid.New()}, nil)
		enrollmentRepo.EXPECT().Exists(gomock.Any(), classID, outsider).Return(false, nil)

		_, err := svc.ListTasks(ctx, classID)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})

	t.Run("ClassNotFound", func(t *testing.T) {
		svc, _, classRepo, _, _ := setupTask(t)
		ctx := principalCtx(uuid.New(), domain.RoleStudent)

		classRepo.EXPECT().GetByID(gomock.Any(), classID).Return(nil, errdefs.ErrNotFound)

		_, err := svc.ListTasks(ctx, classID)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})
}

func TestGetTask(t *testing.T) {
	classID := uuid.New()
	taskID := uuid.New()
	teacherID := uuid.New()
	task := &domain.Task{ID: taskID, ClassID: classID}
	class := &domain.Class{ID: classID, TeacherID: teacherID}

	t.Run("ClassTeacher", func(t *testing.T) {
		svc, taskRepo, classRepo, enrollmentRepo, _ := setupTask(t)
		ctx := principalCtx(teacherID, domain.RoleTeacher)

		taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
		classRepo.EXPECT().GetByID(gomock.Any(), classID).Return(class, nil)
		enrollmentRepo.EXPECT().Exists(gomock.Any(), classID, teacherID).Return(false, nil)

		result, err := svc.GetTask(ctx, taskID)
		require.NoError(t, err)
		assert.Equal(t, taskID, result.ID)
	})

	t.Run("OutsiderForbidden", func(t *testing.T) {
		svc, taskRepo, classRepo, enrollmentRepo, _ := setupTask(t)
		outsider := uuid.New()
		ctx := principalCtx(outsider, domain.RoleStudent)

		taskRepo.EXPECT().GetByID(gomock.Any(), taskID).Return(task, nil)
		classRepo.EXPECT().GetByID(gomock.Any(), classID).Return(class, nil)
		enrollmentRepo.EXPECT().Exists(gomock.Any(), classID, outsider).Return(false, nil)

		_, err := svc.GetTask(ctx, taskID)
		assert.ErrorIs(t, err, errdefs.ErrPermissionDenied)
	})
}
