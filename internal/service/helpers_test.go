package service_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Franco-15/classroom-backend/internal/ctxdata"
	"github.com/Franco-15/classroom-backend/internal/domain"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func principalCtx(id uuid.UUID, role domain.Role) context.Context {
	return ctxdata.WithPrincipal(context.Background(), domain.Principal{ID: id, Role: role})
}

func strptr(s string) *string { return &s }

func f64ptr(f float64) *float64 { return &f }
