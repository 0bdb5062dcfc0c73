package resumes

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a resume does not exist or is tombstoned.
	ErrNotFound = errors.New("resume not found")

	// ErrInvalidInput marks caller mistakes that map to a 400.
	ErrInvalidInput = errors.New("invalid input")
)

// Repo defines persistence operations for resumes. All operations are
// owner-scoped; tombstoned rows behave as if they do not exist.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	GetByID(ctx context.Context, userID, resumeID string) (Resume, error)
	ListByUser(ctx context.Context, userID string) ([]Resume, error)
	Update(ctx context.Context, resume Resume) error
	SoftDelete(ctx context.Context, userID, resumeID string) error
}
