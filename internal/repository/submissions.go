package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Franco-15/classroom-backend/internal/domain"
	"github.com/Franco-15/classroom-backend/internal/errdefs"
)

type SubmissionRepository struct {
	db *sql.DB
}

func NewSubmissionRepository(db *sql.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

const submissionColumns = `id, task_id, student_id, content, file_url, status, grade, feedback, submitted_at, graded_at`

// Upsert creates or overwrites the single submission row keyed by
// (task_id, student_id). A resubmission resets status to SUBMITTED and clears
// grade, feedback and graded_at, so a SUBMITTED row never carries stale
// grading. The unique constraint makes concurrent submits by the same
// student collapse into one row.
func (r *SubmissionRepository) Upsert(ctx context.Context, submission *domain.Submission) error {
	query := `
		INSERT INTO submissions (id, task_id, student_id, content, file_url, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (task_id, student_id) DO UPDATE
		SET content      = EXCLUDED.content,
		    file_url     = EXCLUDED.file_url,
		    status       = EXCLUDED.status,
		    submitted_at = EXCLUDED.submitted_at,
		    grade        = NULL,
		    feedback     = NULL,
		    graded_at    = NULL
		RETURNING ` + submissionColumns

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	row := r.db.QueryRowContext(ctx, query,
		id,
		submission.TaskID,
		submission.StudentID,
		submission.Content,
		submission.FileURL,
		domain.SubmissionStatusSubmitted,
		submission.SubmittedAt,
	)
	return scanSubmissionInto(row, submission)
}

func (r *SubmissionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE id = $1`

	var s domain.Submission
	if err := scanSubmissionInto(r.db.QueryRowContext(ctx, query, id), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubmissionRepository) GetByTaskAndStudent(ctx context.Context, taskID, studentID uuid.UUID) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE task_id = $1 AND student_id = $2`

	var s domain.Submission
	if err := scanSubmissionInto(r.db.QueryRowContext(ctx, query, taskID, studentID), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SubmissionRepository) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE task_id = $1 ORDER BY submitted_at DESC`

	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var submissions []*domain.Submission
	for rows.Next() {
		var s domain.Submission
		if err := rows.Scan(
			&s.ID,
			&s.TaskID,
			&s.StudentID,
			&s.Content,
			&s.FileURL,
			&s.Status,
			&s.Grade,
			&s.Feedback,
			&s.SubmittedAt,
			&s.GradedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		submissions = append(submissions, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return submissions, nil
}

// SetGrade marks the submission GRADED with the given grade and feedback.
func (r *SubmissionRepository) SetGrade(ctx context.Context, id uuid.UUID, grade float64, feedback *string, gradedAt time.Time) (*domain.Submission, error) {
	query := `
		UPDATE submissions
		SET grade = $1, feedback = $2, status = $3, graded_at = $4
		WHERE id = $5
		RETURNING ` + submissionColumns

	var s domain.Submission
	row := r.db.QueryRowContext(ctx, query, grade, feedback, domain.SubmissionStatusGraded, gradedAt, id)
	if err := scanSubmissionInto(row, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanSubmissionInto(row *sql.Row, s *domain.Submission) error {
	err := row.Scan(
		&s.ID,
		&s.TaskID,
		&s.StudentID,
		&s.Content,
		&s.FileURL,
		&s.Status,
		&s.Grade,
		&s.Feedback,
		&s.SubmittedAt,
		&s.GradedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errdefs.ErrNotFound
		}
		return fmt.Errorf("failed to get submission: %w", err)
	}
	return nil
}
