// Package service implements the business rules: the assignment lifecycle,
// the membership registry and class administration. Services consult the
// permission evaluator before any mutation and check resource existence
// before permission, so a missing resource reports not-found even to an
// unauthorized caller.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Franco-15/classroom-backend/internal/ctxdata"
	"github.com/Franco-15/classroom-backend/internal/domain"
	"github.com/Franco-15/classroom-backend/internal/errdefs"
	"github.com/Franco-15/classroom-backend/internal/events"
	"github.com/Franco-15/classroom-backend/internal/logging"
)

func principalFromContext(ctx context.Context) (domain.Principal, error) {
	p, ok := ctxdata.GetPrincipal(ctx)
	if !ok {
		return domain.Principal{}, errdefs.ErrUnauthenticated
	}
	return p, nil
}

// publish sends a lifecycle event without failing the request. A nil
// publisher disables events entirely.
func publish(ctx context.Context, publisher EventPublisher, event events.Event) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		if logger, ok := logging.GetFromContext(ctx); ok {
			logger.Error(ctx, "failed to publish event",
				zap.String("event_type", event.Type),
				zap.Error(err),
			)
		}
	}
}
