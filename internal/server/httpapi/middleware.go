package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Franco-15/classroom-backend/internal/ctxdata"
	"github.com/Franco-15/classroom-backend/internal/domain"
	"github.com/Franco-15/classroom-backend/internal/errdefs"
	"github.com/Franco-15/classroom-backend/internal/logging"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func NewLoggingMiddleware(logger *logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			traceID, err := uuid.NewV7()
			if err != nil {
				traceID = uuid.New()
			}

			ctx := ctxdata.WithTraceID(r.Context(), traceID.String())
			ctx = logging.ContextWithLogger(ctx, logger)
			r = r.WithContext(ctx)

			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			w.Header().Set("X-Trace-Id", traceID.String())

			next.ServeHTTP(sw, r)

			logger.Info(ctx, "request completed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", sw.status),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}

// isCredentialError separates rejected credentials from store failures. Only
// the former may answer 401; a failing store reports a server error.
func isCredentialError(err error) bool {
	return errors.Is(err, errdefs.ErrTokenExpired) ||
		errors.Is(err, errdefs.ErrTokenMalformed) ||
		errors.Is(err, errdefs.ErrUnauthenticated)
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

// NewAuthMiddleware rejects requests without a valid access token and stores
// the resolved principal in the request context. The role comes from the
// store at request time, never from the token payload.
func (h *AuthHandler) NewAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := bearerToken(r)
			if !ok {
				if logger, lok := logging.GetFromContext(ctx); lok {
					logger.Info(ctx, "no authorization header", zap.String("path", r.URL.Path))
				}
				writeErrorJSON(w, http.StatusUnauthorized, "authorization required")
				return
			}

			user, err := h.svc.ResolvePrincipal(ctx, token)
			if err != nil {
				if !isCredentialError(err) {
					writeError(w, r, err)
					return
				}
				if logger, lok := logging.GetFromContext(ctx); lok {
					logger.Info(ctx, "rejected access token",
						zap.String("path", r.URL.Path),
						zap.Error(err),
					)
				}
				writeErrorJSON(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx = ctxdata.WithPrincipal(ctx, domain.Principal{ID: user.ID, Role: user.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NewOptionalAuthMiddleware lets requests through without a credential; the
// handler sees no principal and decides what an anonymous caller gets. A
// credential that is present but invalid is still rejected.
func (h *AuthHandler) NewOptionalAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token, ok := bearerToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := h.svc.ResolvePrincipal(ctx, token)
			if err != nil {
				if !isCredentialError(err) {
					writeError(w, r, err)
					return
				}
				writeErrorJSON(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx = ctxdata.WithPrincipal(ctx, domain.Principal{ID: user.ID, Role: user.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
