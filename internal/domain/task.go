package domain

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID
	ClassID     uuid.UUID
	AuthorID    uuid.UUID
	Title       string
	Description *string
	DueDate     time.Time
	Points      *float64
	CreatedAt   time.Time
}

type Submission struct {
	ID          uuid.UUID
	TaskID      uuid.UUID
	StudentID   uuid.UUID
	Content     string
	FileURL     *string
	Status      SubmissionStatus
	Grade       *float64
	Feedback    *string
	SubmittedAt time.Time
	GradedAt    *time.Time
}
