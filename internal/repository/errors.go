package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/Franco-15/classroom-backend/internal/errdefs"
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}

func handleError(err error) error {
	if isUniqueViolation(err) {
		return errdefs.ErrAlreadyExists
	}
	return fmt.Errorf("repository error: %w", err)
}
