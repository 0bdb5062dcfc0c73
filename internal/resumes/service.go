package resumes

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DeleteConfirmToken is the literal word a user must retype before a resume
// is tombstoned. Comparison is case-insensitive.
const DeleteConfirmToken = "delete"

// ErrConfirmMismatch is returned when the delete confirmation token does
// not match; the resume stays untouched.
var ErrConfirmMismatch = errors.New(`type "delete" to confirm`)

// Service contains business logic for resumes.
type Service struct {
	Repo Repo
	Now  func() time.Time
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo, Now: func() time.Time { return time.Now().UTC() }}
}

// Create persists a fresh resume draft. The document receives its identity
// and timestamps here; this is the Draft -> Saved transition.
func (s *Service) Create(ctx context.Context, userID, title string) (Resume, error) {
	if strings.TrimSpace(userID) == "" {
		return Resume{}, ErrInvalidInput
	}

	resume := NewResume(userID, title)
	resume.ID = uuid.NewString()
	now := s.Now()
	resume.CreatedAt = now
	resume.UpdatedAt = now

	if err := s.Repo.Create(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// Get fetches a resume owned by the user.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (Resume, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(resumeID) == "" {
		return Resume{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, resumeID)
}

// List returns the user's live resumes, most recently updated first.
func (s *Service) List(ctx context.Context, userID string) ([]Resume, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID)
}

// UpdateInput carries a partial update; nil fields are left untouched.
type UpdateInput struct {
	Title          *string
	ProfileInfo    *ProfileInfo
	ContactInfo    *ContactInfo
	WorkExperience *[]Experience
	Education      *[]Education
	Skills         *[]Skill
	Projects       *[]Project
	Hobbies        *[]string
	TemplateID     *int
}

// Update merges the partial input into the stored document and bumps
// updatedAt; this is the Saved(modified) -> Saved transition.
func (s *Service) Update(ctx context.Context, userID, resumeID string, in UpdateInput) (Resume, error) {
	resume, err := s.Get(ctx, userID, resumeID)
	if err != nil {
		return Resume{}, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			title = DefaultTitle
		}
		resume.Title = title
	}
	if in.ProfileInfo != nil {
		resume.ProfileInfo = *in.ProfileInfo
	}
	if in.ContactInfo != nil {
		resume.ContactInfo = *in.ContactInfo
	}
	if in.WorkExperience != nil {
		resume.WorkExperience = *in.WorkExperience
	}
	if in.Education != nil {
		resume.Education = *in.Education
	}
	if in.Skills != nil {
		resume.Skills = *in.Skills
	}
	if in.Projects != nil {
		resume.Projects = *in.Projects
	}
	if in.Hobbies != nil {
		resume.Hobbies = *in.Hobbies
	}
	if in.TemplateID != nil {
		resume.TemplateID = *in.TemplateID
	}

	resume.UpdatedAt = s.Now()
	if err := s.Repo.Update(ctx, resume); err != nil {
		return Resume{}, err
	}
	return resume, nil
}

// Delete tombstones a resume after checking the retyped confirmation token.
// Any token other than case-insensitive "delete" leaves the document Saved.
func (s *Service) Delete(ctx context.Context, userID, resumeID, confirm string) error {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(resumeID) == "" {
		return ErrInvalidInput
	}
	if !strings.EqualFold(strings.TrimSpace(confirm), DeleteConfirmToken) {
		return ErrConfirmMismatch
	}
	return s.Repo.SoftDelete(ctx, userID, resumeID)
}
