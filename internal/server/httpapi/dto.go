package httpapi

import (
	"time"

	"github.com/Franco-15/classroom-backend/internal/domain"
)

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Avatar    *string   `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}

func toUserResponses(users []*domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}

type classResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	Subject       *string   `json:"subject,omitempty"`
	Code          string    `json:"code"`
	TeacherID     string    `json:"teacherId"`
	StudentsCount *int      `json:"studentsCount,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toClassResponse(c *domain.Class) classResponse {
	return classResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Description: c.Description,
		Subject:     c.Subject,
		Code:        c.Code,
		TeacherID:   c.TeacherID.String(),
		CreatedAt:   c.CreatedAt,
	}
}

// toClassDetailResponse is the single-class payload, which also carries the
// enrollment count.
func toClassDetailResponse(c *domain.Class, studentsCount int) classResponse {
	resp := toClassResponse(c)
	resp.StudentsCount = &studentsCount
	return resp
}

func toClassResponses(classes []*domain.Class) []classResponse {
	out := make([]classResponse, 0, len(classes))
	for _, c := range classes {
		out = append(out, toClassResponse(c))
	}
	return out
}

type taskResponse struct {
	ID          string    `json:"id"`
	ClassID     string    `json:"classId"`
	AuthorID    string    `json:"authorId"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	DueDate     time.Time `json:"dueDate"`
	Points      *float64  `json:"points,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID.String(),
		ClassID:     t.ClassID.String(),
		AuthorID:    t.AuthorID.String(),
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDate,
		Points:      t.Points,
		CreatedAt:   t.CreatedAt,
	}
}

func toTaskResponses(tasks []*domain.Task) []taskResponse {
	out := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toTaskResponse(t))
	}
	return out
}

type submissionResponse struct {
	ID          string     `json:"id"`
	TaskID      string     `json:"taskId"`
	StudentID   string     `json:"studentId"`
	Content     string     `json:"content"`
	FileURL     *string    `json:"fileUrl,omitempty"`
	Status      string     `json:"status"`
	Grade       *float64   `json:"grade,omitempty"`
	Feedback    *string    `json:"feedback,omitempty"`
	SubmittedAt time.Time  `json:"submittedAt"`
	GradedAt    *time.Time `json:"gradedAt,omitempty"`
}

func toSubmissionResponse(s *domain.Submission) submissionResponse {
	return submissionResponse{
		ID:          s.ID.String(),
		TaskID:      s.TaskID.String(),
		StudentID:   s.StudentID.String(),
		Content:     s.Content,
		FileURL:     s.FileURL,
		Status:      string(s.Status),
		Grade:       s.Grade,
		Feedback:    s.Feedback,
		SubmittedAt: s.SubmittedAt,
		GradedAt:    s.GradedAt,
	}
}

func toSubmissionResponses(subs []*domain.Submission) []submissionResponse {
	out := make([]submissionResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, toSubmissionResponse(s))
	}
	return out
}

type announcementResponse struct {
	ID        string    `json:"id"`
	ClassID   string    `json:"classId"`
	AuthorID  string    `json:"authorId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toAnnouncementResponse(a *domain.Announcement) announcementResponse {
	return announcementResponse{
		ID:        a.ID.String(),
		ClassID:   a.ClassID.String(),
		AuthorID:  a.AuthorID.String(),
		Title:     a.Title,
		Content:   a.Content,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toAnnouncementResponses(items []*domain.Announcement) []announcementResponse {
	out := make([]announcementResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toAnnouncementResponse(a))
	}
	return out
}

type materialResponse struct {
	ID          string    `json:"id"`
	ClassID     string    `json:"classId"`
	AuthorID    string    `json:"authorId"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	FileURL     *string   `json:"fileUrl,omitempty"`
	Link        *string   `json:"link,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toMaterialResponse(m *domain.Material) materialResponse {
	return materialResponse{
		ID:          m.ID.String(),
		ClassID:     m.ClassID.String(),
		AuthorID:    m.AuthorID.String(),
		Title:       m.Title,
		Description: m.Description,
		FileURL:     m.FileURL,
		Link:        m.Link,
		CreatedAt:   m.CreatedAt,
	}
}

func toMaterialResponses(items []*domain.Material) []materialResponse {
	out := make([]materialResponse, 0, len(items))
	for _, m := range items {
		out = append(out, toMaterialResponse(m))
	}
	return out
}

type tokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
