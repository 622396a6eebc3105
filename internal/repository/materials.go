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

type MaterialRepository struct {
	db *sql.DB
}

func NewMaterialRepository(db *sql.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

func (r *MaterialRepository) Create(ctx context.Context, m *domain.Material) error {
	query := `
		INSERT INTO materials (id, class_id, author_id, title, description, file_url, link, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING created_at
	`

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	err = r.db.QueryRowContext(ctx, query,
		id,
		m.ClassID,
		m.AuthorID,
		m.Title,
		m.Description,
		m.FileURL,
		m.Link,
	).Scan(&m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create material: %w", err)
	}

	m.ID = id
	return nil
}

func (r *MaterialRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Material, error) {
	query := `
		SELECT id, class_id, author_id, title, description, file_url, link, created_at
		FROM materials
		WHERE id = $1
	`

	var m domain.Material
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&m.ID,
		&m.ClassID,
		&m.AuthorID,
		&m.Title,
		&m.Description,
		&m.FileURL,
		&m.Link,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errdefs.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get material: %w", err)
	}
	return &m, nil
}

func (r *MaterialRepository) ListByClass(ctx context.Context, classID uuid.UUID) ([]*domain.Material, error) {
	query := `
		SELECT id, class_id, author_id, title, description, file_url, link, created_at
		FROM materials
		WHERE class_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var materials []*domain.Material
	for rows.Next() {
		var m domain.Material
		if err := rows.Scan(
			&m.ID,
			&m.ClassID,
			&m.AuthorID,
			&m.Title,
			&m.Description,
			&m.FileURL,
			&m.Link,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan material: %w", err)
		}
		materials = append(materials, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return materials, nil
}

func (r *MaterialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete material: %w", err)
	}
	return checkAffected(result)
}
