package resumes

import (
	"strings"
	"time"
)

// DefaultTitle is applied when a resume is created without one.
const DefaultTitle = "Untitled Resume"

// Resume is the canonical resume document owned by a user.
//
// Section slices keep their stored insertion order; incomplete entries are
// retained here and only filtered at render time.
type Resume struct {
	ID             string       `json:"id"`
	UserID         string       `json:"-"`
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

type ProfileInfo struct {
	FullName    string `json:"fullName"`
	Designation string `json:"designation"`
	Summary     string `json:"summary"`
}

type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

type Experience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

type Skill struct {
	Name string `json:"name"`
}

type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	GitHub      string `json:"github"`
	LiveDemo    string `json:"liveDemo"`
}

// Complete reports whether the entry carries the minimum fields required
// for rendering. Incomplete entries stay in storage but are skipped by the
// projector.
func (e Experience) Complete() bool {
	return strings.TrimSpace(e.Company) != "" && strings.TrimSpace(e.Role) != ""
}

func (e Education) Complete() bool {
	return strings.TrimSpace(e.Institution) != "" && strings.TrimSpace(e.Degree) != ""
}

func (s Skill) Complete() bool {
	return strings.TrimSpace(s.Name) != ""
}

func (p Project) Complete() bool {
	return strings.TrimSpace(p.Title) != ""
}

// NewResume builds an empty draft for a user. The ID and timestamps are
// assigned by the service on create.
func NewResume(userID, title string) Resume {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	return Resume{
		UserID:         userID,
		Title:          title,
		WorkExperience: []Experience{},
		Education:      []Education{},
		Skills:         []Skill{},
		Projects:       []Project{},
		Hobbies:        []string{},
		TemplateID:     1,
	}
}
