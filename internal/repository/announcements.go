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

type AnnouncementRepository struct {
	db *sql.DB
}

func NewAnnouncementRepository(db *sql.DB) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

func (r *AnnouncementRepository) Create(ctx context.Context, a *domain.Announcement) error {
	query := `
		INSERT INTO announcements (id, class_id, author_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	err = r.db.QueryRowContext(ctx, query,
		id,
		a.ClassID,
		a.AuthorID,
		a.Title,
		a.Content,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}

	a.ID = id
	return nil
}

func (r *AnnouncementRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Announcement, error) {
	query := `
		SELECT id, class_id, author_id, title, content, created_at, updated_at
		FROM announcements
		WHERE id = $1
	`

	var a domain.Announcement
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID,
		&a.ClassID,
		&a.AuthorID,
		&a.Title,
		&a.Content,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errdefs.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}
	return &a, nil
}

func (r *AnnouncementRepository) ListByClass(ctx context.Context, classID uuid.UUID) ([]*domain.Announcement, error) {
	query := `
		SELECT id, class_id, author_id, title, content, created_at, updated_at
		FROM announcements
		WHERE class_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var announcements []*domain.Announcement
	for rows.Next() {
		var a domain.Announcement
		if err := rows.Scan(
			&a.ID,
			&a.ClassID,
			&a.AuthorID,
			&a.Title,
			&a.Content,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		announcements = append(announcements, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return announcements, nil
}

func (r *AnnouncementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	return checkAffected(result)
}
