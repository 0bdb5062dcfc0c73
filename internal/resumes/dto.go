package resumes

import "time"

// resumeResponse is the outward-facing representation of a resume.
type resumeResponse struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	ProfileInfo    ProfileInfo  `json:"profileInfo"`
	ContactInfo    ContactInfo  `json:"contactInfo"`
	WorkExperience []Experience `json:"workExperience"`
	Education      []Education  `json:"education"`
	Skills         []Skill      `json:"skills"`
	Projects       []Project    `json:"projects"`
	Hobbies        []string     `json:"hobbies"`
	TemplateID     int          `json:"templateId"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

func toResponse(resume Resume) resumeResponse {
	return resumeResponse{
		ID:             resume.ID,
		Title:          resume.Title,
		ProfileInfo:    resume.ProfileInfo,
		ContactInfo:    resume.ContactInfo,
		WorkExperience: emptySlice(resume.WorkExperience),
		Education:      emptySlice(resume.Education),
		Skills:         emptySlice(resume.Skills),
		Projects:       emptySlice(resume.Projects),
		Hobbies:        emptySlice(resume.Hobbies),
		TemplateID:     resume.TemplateID,
		CreatedAt:      resume.CreatedAt,
		UpdatedAt:      resume.UpdatedAt,
	}
}
