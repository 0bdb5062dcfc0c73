package ats

import (
	"fmt"
	"strings"

	"resume-builder-backend/internal/resumes"
)

const sectionRule = "===================="

// ResumeText flattens a resume into the plain-text layout the scoring
// API expects. Sections with no entries are omitted entirely.
func ResumeText(r resumes.Resume) string {
	var b strings.Builder

	b.WriteString("PROFILE\n")
	b.WriteString(sectionRule + "\n")
	fmt.Fprintf(&b, "Name: %s\n", r.ProfileInfo.FullName)
	fmt.Fprintf(&b, "Title: %s\n", r.ProfileInfo.Designation)
	fmt.Fprintf(&b, "Email: %s\n", r.ContactInfo.Email)
	fmt.Fprintf(&b, "Phone: %s\n", r.ContactInfo.Phone)
	fmt.Fprintf(&b, "LinkedIn: %s\n", r.ContactInfo.LinkedIn)
	fmt.Fprintf(&b, "Summary: %s\n\n", r.ProfileInfo.Summary)

	if len(r.WorkExperience) > 0 {
		b.WriteString("WORK EXPERIENCE\n")
		b.WriteString(sectionRule + "\n")
		for i, exp := range r.WorkExperience {
			fmt.Fprintf(&b, "%d. %s at %s\n", i+1, exp.Role, exp.Company)
			fmt.Fprintf(&b, "   %s - %s\n", exp.StartDate, exp.EndDate)
			fmt.Fprintf(&b, "   %s\n\n", exp.Description)
		}
	}

	if len(r.Education) > 0 {
		b.WriteString("EDUCATION\n")
		b.WriteString(sectionRule + "\n")
		for i, edu := range r.Education {
			fmt.Fprintf(&b, "%d. %s from %s\n", i+1, edu.Degree, edu.Institution)
			fmt.Fprintf(&b, "   %s - %s\n\n", edu.StartDate, edu.EndDate)
		}
	}

	if len(r.Skills) > 0 {
		b.WriteString("SKILLS\n")
		b.WriteString(sectionRule + "\n")
		for _, skill := range r.Skills {
			fmt.Fprintf(&b, "- %s\n", skill.Name)
		}
		b.WriteString("\n")
	}

	if len(r.Projects) > 0 {
		b.WriteString("PROJECTS\n")
		b.WriteString(sectionRule + "\n")
		for i, proj := range r.Projects {
			fmt.Fprintf(&b, "%d. %s\n", i+1, proj.Title)
			fmt.Fprintf(&b, "   %s\n", proj.Description)
			fmt.Fprintf(&b, "   GitHub: %s\n", proj.GitHub)
			fmt.Fprintf(&b, "   Live Demo: %s\n\n", proj.LiveDemo)
		}
	}

	return b.String()
}
