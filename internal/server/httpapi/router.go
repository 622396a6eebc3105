// Package httpapi is the HTTP edge of the service: chi routing, bearer auth
// middleware and thin handlers delegating to the service layer.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Franco-15/classroom-backend/internal/logging"
	"github.com/Franco-15/classroom-backend/internal/service"
)

type RouterDeps struct {
	Logger *logging.Logger

	Auth          *service.AuthService
	Classes       *service.ClassService
	Tasks         *service.TaskService
	Submissions   *service.SubmissionService
	Announcements *service.AnnouncementService
	Materials     *service.MaterialService

	Cache    Cache
	CacheTTL time.Duration
}

func NewRouter(deps RouterDeps) *chi.Mux {
	authHandler := NewAuthHandler(deps.Auth)
	classHandler := NewClassHandler(deps.Classes, deps.Cache, deps.CacheTTL)
	taskHandler := NewTaskHandler(deps.Tasks)
	submissionHandler := NewSubmissionHandler(deps.Submissions)
	contentHandler := NewContentHandler(deps.Announcements, deps.Materials)

	authMiddleware := authHandler.NewAuthMiddleware()

	r := chi.NewRouter()
	r.Use(NewLoggingMiddleware(deps.Logger))
	r.Use(func(next http.Handler) http.Handler {
		return http.MaxBytesHandler(next, 10<<20) // 10 MB
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			authHandler.RegisterRoutes(r, authMiddleware)
		})
		r.Route("/classes", func(r chi.Router) {
			classHandler.RegisterRoutes(r, authMiddleware)
			taskHandler.RegisterClassRoutes(r, authMiddleware)
			contentHandler.RegisterClassRoutes(r, authMiddleware)
		})
		r.Route("/tasks", func(r chi.Router) {
			taskHandler.RegisterRoutes(r, authMiddleware)
			submissionHandler.RegisterTaskRoutes(r, authMiddleware)
		})
		r.Route("/submissions", func(r chi.Router) {
			submissionHandler.RegisterRoutes(r, authMiddleware)
		})
		r.Route("/announcements", func(r chi.Router) {
			contentHandler.RegisterAnnouncementRoutes(r, authMiddleware)
		})
		r.Route("/materials", func(r chi.Router) {
			contentHandler.RegisterMaterialRoutes(r, authMiddleware)
		})
	})

	return r
}
