package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Franco-15/classroom-backend/internal/domain"
	"github.com/Franco-15/classroom-backend/internal/errdefs"
)

type ClassRepository struct {
	db *sql.DB
}

func NewClassRepository(db *sql.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// Create inserts the class with its code. A duplicate code surfaces as
// errdefs.ErrAlreadyExists so the caller can retry with a fresh code.
func (r *ClassRepository) Create(ctx context.Context, class *domain.Class) error {
	query := `
		INSERT INTO classes (id, name, description, subject, code, teacher_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING created_at
	`

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	err = r.db.QueryRowContext(ctx, query,
		id,
		class.Name,
		class.Description,
		class.Subject,
		class.Code,
		class.TeacherID,
	).Scan(&class.CreatedAt)
	if err != nil {
		return handleError(err)
	}

	class.ID = id
	return nil
}

func (r *ClassRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Class, error) {
	query := `
		SELECT id, name, description, subject, code, teacher_id, created_at
		FROM classes
		WHERE id = $1
	`
	return scanClass(r.db.QueryRowContext(ctx, query, id))
}

func (r *ClassRepository) GetByCode(ctx context.Context, code string) (*domain.Class, error) {
	query := `
		SELECT id, name, description, subject, code, teacher_id, created_at
		FROM classes
		WHERE code = $1
	`
	return scanClass(r.db.QueryRowContext(ctx, query, code))
}

func (r *ClassRepository) ListByTeacher(ctx context.Context, teacherID uuid.UUID) ([]*domain.Class, error) {
	query := `
		SELECT id, name, description, subject, code, teacher_id, created_at
		FROM classes
		WHERE teacher_id = $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, teacherID)
}

func (r *ClassRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*domain.Class, error) {
	query := `
		SELECT c.id, c.name, c.description, c.subject, c.code, c.teacher_id, c.created_at
		FROM classes c
		JOIN enrollments e ON e.class_id = c.id
		WHERE e.student_id = $1
		ORDER BY e.joined_at DESC
	`
	return r.list(ctx, query, studentID)
}

func (r *ClassRepository) ListAll(ctx context.Context) ([]*domain.Class, error) {
	query := `
		SELECT id, name, description, subject, code, teacher_id, created_at
		FROM classes
		ORDER BY created_at DESC
	`
	return r.list(ctx, query)
}

func (r *ClassRepository) Update(ctx context.Context, class *domain.Class) error {
	query := `
		UPDATE classes
		SET name = $1, description = $2, subject = $3
		WHERE id = $4
	`
	result, err := r.db.ExecContext(ctx, query,
		class.Name,
		class.Description,
		class.Subject,
		class.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update class: %w", err)
	}
	return checkAffected(result)
}

// Delete removes the class; tasks, announcements, materials and enrollments
// go with it via ON DELETE CASCADE.
func (r *ClassRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM classes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete class: %w", err)
	}
	return checkAffected(result)
}

func (r *ClassRepository) CountStudents(ctx context.Context, classID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM enrollments WHERE class_id = $1`, classID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}

func (r *ClassRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.Class, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list classes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var classes []*domain.Class
	for rows.Next() {
		var c domain.Class
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Description,
			&c.Subject,
			&c.Code,
			&c.TeacherID,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan class: %w", err)
		}
		classes = append(classes, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return classes, nil
}

func scanClass(row *sql.Row) (*domain.Class, error) {
	var c domain.Class
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Description,
		&c.Subject,
		&c.Code,
		&c.TeacherID,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errdefs.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get class: %w", err)
	}
	return &c, nil
}

func checkAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return errdefs.ErrNotFound
	}
	return nil
}
