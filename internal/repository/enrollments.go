package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/Franco-15/classroom-backend/internal/domain"
)

type EnrollmentRepository struct {
	db *sql.DB
}

func NewEnrollmentRepository(db *sql.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create relies on the (class_id, student_id) unique constraint: a duplicate
// enrollment surfaces as errdefs.ErrAlreadyExists, atomically, with no
// check-then-insert race.
func (r *EnrollmentRepository) Create(ctx context.Context, classID, studentID uuid.UUID) error {
	query := `
		INSERT INTO enrollments (class_id, student_id, joined_at)
		VALUES ($1, $2, NOW())
	`
	if _, err := r.db.ExecContext(ctx, query, classID, studentID); err != nil {
		return handleError(err)
	}
	return nil
}

func (r *EnrollmentRepository) Delete(ctx context.Context, classID, studentID uuid.UUID) error {
	query := `DELETE FROM enrollments WHERE class_id = $1 AND student_id = $2`
	result, err := r.db.ExecContext(ctx, query, classID, studentID)
	if err != nil {
		return fmt.Errorf("failed to delete enrollment: %w", err)
	}
	return checkAffected(result)
}

func (r *EnrollmentRepository) Exists(ctx context.Context, classID, studentID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM enrollments WHERE class_id = $1 AND student_id = $2)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, classID, studentID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check enrollment: %w", err)
	}
	return exists, nil
}

func (r *EnrollmentRepository) ListStudents(ctx context.Context, classID uuid.UUID) ([]*domain.User, error) {
	query := `
		SELECT u.id, u.email, u.password_hash, u.name, u.role, u.avatar, u.created_at
		FROM users u
		JOIN enrollments e ON e.student_id = u.id
		WHERE e.class_id = $1
		ORDER BY e.joined_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var students []*domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID,
			&u.Email,
			&u.PasswordHash,
			&u.Name,
			&u.Role,
			&u.Avatar,
			&u.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return students, nil
}
