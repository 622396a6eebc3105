package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Franco-15/classroom-backend/internal/ctxdata"
	"github.com/Franco-15/classroom-backend/internal/errdefs"
	"github.com/Franco-15/classroom-backend/internal/service"
)

// Cache is a best-effort byte cache for hot read paths. A nil Cache
// disables caching.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}

type ClassHandler struct {
	svc      *service.ClassService
	cache    Cache
	cacheTTL time.Duration
}

func NewClassHandler(svc *service.ClassService, cache Cache, cacheTTL time.Duration) *ClassHandler {
	return &ClassHandler{svc: svc, cache: cache, cacheTTL: cacheTTL}
}

func (h *ClassHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.With(authMiddleware).Group(func(r chi.Router) {
		r.Get("/", h.ListClasses)
		r.Post("/", h.CreateClass)
		r.Get("/all", h.ListAllClasses)
		r.Post("/join", h.JoinClass)
		r.Get("/{classId}", h.GetClass)
		r.Put("/{classId}", h.UpdateClass)
		r.Delete("/{classId}", h.DeleteClass)
		r.Get("/{classId}/students", h.ListStudents)
		r.Delete("/{classId}/students/{studentId}", h.RemoveStudent)
	})
}

// Cache keys carry the principal so a hit never leaks a view the caller was
// not authorized for. Staleness after a write is bounded by the TTL.
func classCacheKey(classID, principalID uuid.UUID) string {
	return "class:" + classID.String() + ":u:" + principalID.String()
}

func parseUUIDParam(r *http.Request, key string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, key))
	if err != nil {
		return uuid.Nil, errdefs.ErrValidation
	}
	return id, nil
}

type createClassRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Subject     *string `json:"subject"`
}

func (h *ClassHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var req createClassRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	class, err := h.svc.CreateClass(r.Context(), service.CreateClassInput{
		Name:        req.Name,
		Description: req.Description,
		Subject:     req.Subject,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toClassResponse(class))
}

func (h *ClassHandler) ListClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.svc.ListClasses(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toClassResponses(classes))
}

func (h *ClassHandler) ListAllClasses(w http.ResponseWriter, r *http.Request) {
	classes, err := h.svc.ListAllClasses(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toClassResponses(classes))
}

// GetClass serves the class detail, from the per-principal cache when
// possible.
func (h *ClassHandler) GetClass(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "classId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var key string
	if h.cache != nil {
		if p, ok := ctxdata.GetPrincipal(r.Context()); ok {
			key = classCacheKey(id, p.ID)
			if data, hit := h.cache.Get(r.Context(), key); hit {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				w.Write(data)
				return
			}
		}
	}

	class, err := h.svc.GetClass(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	count, err := h.svc.CountStudents(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := toClassDetailResponse(class, count)
	if key != "" {
		if data, err := json.Marshal(resp); err == nil {
			h.cache.Set(r.Context(), key, data, h.cacheTTL)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

type updateClassRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Subject     *string `json:"subject"`
}

func (h *ClassHandler) UpdateClass(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "classId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req updateClassRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	class, err := h.svc.UpdateClass(r.Context(), id, service.UpdateClassInput{
		Name:        req.Name,
		Description: req.Description,
		Subject:     req.Subject,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.invalidate(r, id)
	writeJSON(w, http.StatusOK, toClassResponse(class))
}

func (h *ClassHandler) invalidate(r *http.Request, classID uuid.UUID) {
	if h.cache == nil {
		return
	}
	if p, ok := ctxdata.GetPrincipal(r.Context()); ok {
		h.cache.Delete(r.Context(), classCacheKey(classID, p.ID))
	}
}

func (h *ClassHandler) DeleteClass(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "classId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.svc.DeleteClass(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	h.invalidate(r, id)
	writeJSON(w, http.StatusOK, map[string]string{"message": "class deleted"})
}

type joinClassRequest struct {
	Code string `json:"code"`
}

func (h *ClassHandler) JoinClass(w http.ResponseWriter, r *http.Request) {
	var req joinClassRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	class, err := h.svc.JoinClass(r.Context(), req.Code)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toClassResponse(class))
}

func (h *ClassHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "classId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	students, err := h.svc.ListStudents(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponses(students))
}

func (h *ClassHandler) RemoveStudent(w http.ResponseWriter, r *http.Request) {
	classID, err := parseUUIDParam(r, "classId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	studentID, err := parseUUIDParam(r, "studentId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.svc.RemoveStudent(r.Context(), classID, studentID); err != nil {
		// A student who was never enrolled reads as a missing enrollment
		// on this route.
		if errors.Is(err, errdefs.ErrNotEnrolled) {
			err = errdefs.ErrNotFound
		}
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "student removed"})
}
