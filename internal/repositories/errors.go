package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Tagged error kinds returned by the repositories. Handlers and services
// discriminate on these instead of matching driver error strings.
var (
	// ErrNotFound is returned when no document matches the filter.
	ErrNotFound = errors.New("document not found")
	// ErrDuplicateKey is returned when an insert violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrUnavailable is returned when the store cannot be reached.
	ErrUnavailable = errors.New("storage unavailable")
	// ErrConflict is returned when a compare-and-swap write loses the race.
	ErrConflict = errors.New("concurrent modification")
)

// wrapError maps a mongo driver error onto the tagged kinds above.
// Errors outside the closed set are passed through unchanged.
func wrapError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicateKey
	case errors.Is(err, mongo.ErrClientDisconnected),
		errors.Is(err, context.DeadlineExceeded),
		mongo.IsTimeout(err),
		mongo.IsNetworkError(err):
		return ErrUnavailable
	default:
		return err
	}
}
