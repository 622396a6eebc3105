package domain

import (
	"time"

	"github.com/google/uuid"
)

type Class struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Subject     *string
	Code        string
	TeacherID   uuid.UUID
	CreatedAt   time.Time
}

type Enrollment struct {
	ClassID   uuid.UUID
	StudentID uuid.UUID
	JoinedAt  time.Time
}

type Announcement struct {
	ID        uuid.UUID
	ClassID   uuid.UUID
	AuthorID  uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Material struct {
	ID          uuid.UUID
	ClassID     uuid.UUID
	AuthorID    uuid.UUID
	Title       string
	Description *string
	FileURL     *string
	Link        *string
	CreatedAt   time.Time
}
