package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Franco-15/classroom-backend/internal/domain"
	"github.com/Franco-15/classroom-backend/internal/errdefs"
)

var submissionCols = []string{
	"id", "task_id", "student_id", "content", "file_url", "status",
	"grade", "feedback", "submitted_at", "graded_at",
}

func TestSubmissionRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSubmissionRepository(db)
	taskID := uuid.New()
	studentID := uuid.New()
	now := time.Now()

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery("INSERT INTO submissions").
			WithArgs(sqlmock.AnyArg(), taskID, studentID, "the answer is 42", nil, domain.SubmissionStatusSubmitted, now).
			WillReturnRows(sqlmock.NewRows(submissionCols).
				AddRow(id, taskID, studentID, "the answer is 42", nil, "SUBMITTED", nil, nil, now, nil))

		s := &domain.Submission{
			TaskID:      taskID,
			StudentID:   studentID,
			Content:     "the answer is 42",
			SubmittedAt: now,
		}
		err := repo.Upsert(context.Background(), s)
		require.NoError(t, err)
		assert.Equal(t, id, s.ID)
		assert.Equal(t, domain.SubmissionStatusSubmitted, s.Status)
		assert.Nil(t, s.Grade)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ResubmitClearsGrading", func(t *testing.T) {
		id := uuid.New()
		// The ON CONFLICT clause nulls grade, feedback and graded_at; the
		// returned row must reflect that.
		mock.ExpectQuery("INSERT INTO submissions").
			WithArgs(sqlmock.AnyArg(), taskID, studentID, "second attempt", nil, domain.SubmissionStatusSubmitted, now).
			WillReturnRows(sqlmock.NewRows(submissionCols).
				AddRow(id, taskID, studentID, "second attempt", nil, "SUBMITTED", nil, nil, now, nil))

		s := &domain.Submission{
			TaskID:      taskID,
			StudentID:   studentID,
			Content:     "second attempt",
			SubmittedAt: now,
		}
		err := repo.Upsert(context.Background(), s)
		require.NoError(t, err)
		assert.Nil(t, s.Grade)
		assert.Nil(t, s.Feedback)
		assert.Nil(t, s.GradedAt)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSubmissionRepository_SetGrade(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSubmissionRepository(db)
	id := uuid.New()
	taskID := uuid.New()
	studentID := uuid.New()
	now := time.Now()
	feedback := "well done"
	grade := 90.0

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery("UPDATE submissions").
			WithArgs(grade, &feedback, domain.SubmissionStatusGraded, now, id).
			WillReturnRows(sqlmock.NewRows(submissionCols).
				AddRow(id, taskID, studentID, "content here", nil, "GRADED", grade, feedback, now.Add(-time.Hour), now))

		s, err := repo.SetGrade(context.Background(), id, grade, &feedback, now)
		require.NoError(t, err)
		assert.Equal(t, domain.SubmissionStatusGraded, s.Status)
		require.NotNil(t, s.Grade)
		assert.Equal(t, grade, *s.Grade)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("UPDATE submissions").
			WithArgs(grade, &feedback, domain.SubmissionStatusGraded, now, id).
			WillReturnRows(sqlmock.NewRows(submissionCols))

		_, err := repo.SetGrade(context.Background(), id, grade, &feedback, now)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSubmissionRepository_GetByTaskAndStudent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSubmissionRepository(db)
	taskID := uuid.New()
	studentID := uuid.New()

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM submissions").
			WithArgs(taskID, studentID).
			WillReturnRows(sqlmock.NewRows(submissionCols))

		_, err := repo.GetByTaskAndStudent(context.Background(), taskID, studentID)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEnrollmentRepository_Create_Duplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewEnrollmentRepository(db)
	classID := uuid.New()
	studentID := uuid.New()

	mock.ExpectExec("INSERT INTO enrollments").
		WithArgs(classID, studentID).
		WillReturnError(&pq.Error{Code: "23505"})

	err = repo.Create(context.Background(), classID, studentID)
	assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}
