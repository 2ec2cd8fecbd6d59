package service

import (
	"errors"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/spec-kit/finance-api/pkg/util"
)

// owned is any entity that records its owning user.
type owned interface {
	OwnerID() string
}

// loadOwned applies the single load-and-authorize policy every mutating
// operation goes through: absent resource reads as not-found, a resource owned
// by someone else as forbidden. Repositories fetch without an owner filter so
// the two outcomes stay distinct.
func loadOwned[T owned](resource string, entity T, err error, userID string) (T, error) {
	var zero T
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, apperrors.NewNotFound(resource, nil)
		}
		return zero, err
	}
	if entity.OwnerID() != userID {
		return zero, apperrors.NewForbidden("you are not authorized to access this " + resource)
	}
	return entity, nil
}
