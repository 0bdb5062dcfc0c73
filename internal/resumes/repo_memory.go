package resumes

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo used when no database
// is configured.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Resume // userID -> resumes
	gone map[string]time.Time
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Resume),
		gone: make(map[string]time.Time),
	}
}

// Create stores a new resume for a user.
func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[resume.UserID] = append(r.data[resume.UserID], resume)
	return nil
}

// GetByID returns a resume by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, deleted := r.gone[resumeID]; deleted {
		return Resume{}, ErrNotFound
	}
	for _, res := range r.data[userID] {
		if res.ID == resumeID {
			return res, nil
		}
	}
	return Resume{}, ErrNotFound
}

// ListByUser returns live resumes for a user, most recently updated first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Resume, 0, len(r.data[userID]))
	for _, res := range r.data[userID] {
		if _, deleted := r.gone[res.ID]; deleted {
			continue
		}
		out = append(out, res)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out, nil
}

// Update replaces a stored resume in place.
func (r *MemoryRepo) Update(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, deleted := r.gone[resume.ID]; deleted {
		return ErrNotFound
	}
	list := r.data[resume.UserID]
	for i := range list {
		if list[i].ID == resume.ID {
			list[i] = resume
			r.data[resume.UserID] = list
			return nil
		}
	}
	return ErrNotFound
}

// SoftDelete tombstones a resume. There is no undelete.
func (r *MemoryRepo) SoftDelete(ctx context.Context, userID, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, deleted := r.gone[resumeID]; deleted {
		return ErrNotFound
	}
	for _, res := range r.data[userID] {
		if res.ID == resumeID {
			r.gone[resumeID] = time.Now().UTC()
			return nil
		}
	}
	return ErrNotFound
}

var _ Repo = (*MemoryRepo)(nil)
