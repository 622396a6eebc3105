// Package events defines the lifecycle events the backend publishes and a
// kafka producer that carries them. Consumers (notification pipelines,
// analytics) are outside this service.
package events

import "time"

const (
	TypeTaskCreated        = "task.created"
	TypeSubmissionReceived = "submission.received"
	TypeSubmissionGraded   = "submission.graded"
	TypeStudentEnrolled    = "class.student_enrolled"
	TypeStudentRemoved     = "class.student_removed"
)

type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`

	ClassID      string   `json:"class_id,omitempty"`
	TaskID       string   `json:"task_id,omitempty"`
	SubmissionID string   `json:"submission_id,omitempty"`
	StudentID    string   `json:"student_id,omitempty"`
	TeacherID    string   `json:"teacher_id,omitempty"`
	Grade        *float64 `json:"grade,omitempty"`
	DueDate      *string  `json:"due_date,omitempty"`
}
