package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Franco-15/classroom-backend/internal/service"
)

type SubmissionHandler struct {
	svc *service.SubmissionService
}

func NewSubmissionHandler(svc *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

// RegisterTaskRoutes mounts the routes nested under a task.
func (h *SubmissionHandler) RegisterTaskRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Post("/{taskId}/submit", h.SubmitTask)
		r.Get("/{taskId}/submissions", h.ListTaskSubmissions)
		r.Get("/{taskId}/my-submission", h.GetMySubmission)
	})
}

func (h *SubmissionHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Get("/{submissionId}", h.GetSubmission)
		r.Post("/{submissionId}/grade", h.GradeSubmission)
	})
}

type submitTaskRequest struct {
	Content string  `json:"content"`
	FileURL *string `json:"fileUrl"`
}

func (h *SubmissionHandler) SubmitTask(w http.ResponseWriter, r *http.Request) {
	taskID, err := parseUUIDParam(r, "taskId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req submitTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	submission, err := h.svc.SubmitTask(r.Context(), service.SubmitTaskInput{
		TaskID:  taskID,
		Content: req.Content,
		FileURL: req.FileURL,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSubmissionResponse(submission))
}

func (h *SubmissionHandler) ListTaskSubmissions(w http.ResponseWriter, r *http.Request) {
	taskID, err := parseUUIDParam(r, "taskId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	submissions, err := h.svc.ListTaskSubmissions(r.Context(), taskID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubmissionResponses(submissions))
}

func (h *SubmissionHandler) GetMySubmission(w http.ResponseWriter, r *http.Request) {
	taskID, err := parseUUIDParam(r, "taskId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	submission, err := h.svc.GetMySubmission(r.Context(), taskID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubmissionResponse(submission))
}

func (h *SubmissionHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "submissionId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	submission, err := h.svc.GetSubmission(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubmissionResponse(submission))
}

type gradeSubmissionRequest struct {
	Grade    *float64 `json:"grade"`
	Feedback *string  `json:"feedback"`
}

func (h *SubmissionHandler) GradeSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "submissionId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req gradeSubmissionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	submission, err := h.svc.GradeSubmission(r.Context(), service.GradeSubmissionInput{
		SubmissionID: id,
		Grade:        req.Grade,
		Feedback:     req.Feedback,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toSubmissionResponse(submission))
}
