package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Section slices are stored as JSONB
// columns; ordering within a section is the stored array order.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, user_id, title, profile_info, contact_info, work_experience, education, skills, projects, hobbies, template_id, created_at, updated_at`

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (
    id,
    user_id,
    title,
    profile_info,
    contact_info,
    work_experience,
    education,
    skills,
    projects,
    hobbies,
    template_id,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	cols, err := marshalSections(resume)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.UserID,
		resume.Title,
		cols.profile,
		cols.contact,
		cols.experience,
		cols.education,
		cols.skills,
		cols.projects,
		cols.hobbies,
		resume.TemplateID,
		resume.CreatedAt,
		resume.UpdatedAt,
	)
	return err
}

// GetByID fetches a live resume by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, resumeID string) (Resume, error) {
	query := `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, userID, resumeID)
	resume, err := scanResume(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

// ListByUser lists live resumes, most recently updated first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Resume, error) {
	query := `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY updated_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Resume{}
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// Update rewrites every mutable column and bumps updated_at.
func (r *PGRepo) Update(ctx context.Context, resume Resume) error {
	const query = `
UPDATE resumes
SET title = $3,
    profile_info = $4,
    contact_info = $5,
    work_experience = $6,
    education = $7,
    skills = $8,
    projects = $9,
    hobbies = $10,
    template_id = $11,
    updated_at = $12
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL`

	cols, err := marshalSections(resume)
	if err != nil {
		return err
	}

	result, err := r.DB.ExecContext(
		ctx,
		query,
		resume.UserID,
		resume.ID,
		resume.Title,
		cols.profile,
		cols.contact,
		cols.experience,
		cols.education,
		cols.skills,
		cols.projects,
		cols.hobbies,
		resume.TemplateID,
		resume.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// SoftDelete tombstones a resume; tombstoned rows never reappear.
func (r *PGRepo) SoftDelete(ctx context.Context, userID, resumeID string) error {
	const query = `
UPDATE resumes
SET deleted_at = now()
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL`

	result, err := r.DB.ExecContext(ctx, query, userID, resumeID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type sectionColumns struct {
	profile    []byte
	contact    []byte
	experience []byte
	education  []byte
	skills     []byte
	projects   []byte
	hobbies    []byte
}

func marshalSections(resume Resume) (sectionColumns, error) {
	var cols sectionColumns
	var err error
	if cols.profile, err = json.Marshal(resume.ProfileInfo); err != nil {
		return cols, fmt.Errorf("marshal profile_info: %w", err)
	}
	if cols.contact, err = json.Marshal(resume.ContactInfo); err != nil {
		return cols, fmt.Errorf("marshal contact_info: %w", err)
	}
	if cols.experience, err = json.Marshal(emptySlice(resume.WorkExperience)); err != nil {
		return cols, fmt.Errorf("marshal work_experience: %w", err)
	}
	if cols.education, err = json.Marshal(emptySlice(resume.Education)); err != nil {
		return cols, fmt.Errorf("marshal education: %w", err)
	}
	if cols.skills, err = json.Marshal(emptySlice(resume.Skills)); err != nil {
		return cols, fmt.Errorf("marshal skills: %w", err)
	}
	if cols.projects, err = json.Marshal(emptySlice(resume.Projects)); err != nil {
		return cols, fmt.Errorf("marshal projects: %w", err)
	}
	if cols.hobbies, err = json.Marshal(emptySlice(resume.Hobbies)); err != nil {
		return cols, fmt.Errorf("marshal hobbies: %w", err)
	}
	return cols, nil
}

func emptySlice[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var resume Resume
	var profile, contact, experience, education, skills, projects, hobbies []byte

	err := row.Scan(
		&resume.ID,
		&resume.UserID,
		&resume.Title,
		&profile,
		&contact,
		&experience,
		&education,
		&skills,
		&projects,
		&hobbies,
		&resume.TemplateID,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		return Resume{}, err
	}

	if err := json.Unmarshal(profile, &resume.ProfileInfo); err != nil {
		return Resume{}, fmt.Errorf("unmarshal profile_info: %w", err)
	}
	if err := json.Unmarshal(contact, &resume.ContactInfo); err != nil {
		return Resume{}, fmt.Errorf("unmarshal contact_info: %w", err)
	}
	if err := json.Unmarshal(experience, &resume.WorkExperience); err != nil {
		return Resume{}, fmt.Errorf("unmarshal work_experience: %w", err)
	}
	if err := json.Unmarshal(education, &resume.Education); err != nil {
		return Resume{}, fmt.Errorf("unmarshal education: %w", err)
	}
	if err := json.Unmarshal(skills, &resume.Skills); err != nil {
		return Resume{}, fmt.Errorf("unmarshal skills: %w", err)
	}
	if err := json.Unmarshal(projects, &resume.Projects); err != nil {
		return Resume{}, fmt.Errorf("unmarshal projects: %w", err)
	}
	if err := json.Unmarshal(hobbies, &resume.Hobbies); err != nil {
		return Resume{}, fmt.Errorf("unmarshal hobbies: %w", err)
	}

	return resume, nil
}

var _ Repo = (*PGRepo)(nil)
