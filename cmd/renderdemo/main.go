package main

// Renders a sample resume to a standalone HTML document and, unless
// -html-only is set, prints it to PDF through headless Chrome:
//   go run ./cmd/renderdemo -out ./out/sample_resume.pdf

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"resume-builder-backend/internal/export"
	"resume-builder-backend/internal/render"
	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/templates"
)

func main() {
	outPath := flag.String("out", "./out/sample_resume.pdf", "output path for the generated PDF")
	templateID := flag.Int("template", 1, "template id")
	htmlOnly := flag.Bool("html-only", false, "skip the PDF step and only write the HTML document")
	flag.Parse()

	resume := sampleResume()
	doc := render.PrintDocument(resume, templates.ByID(*templateID))

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir failed: %v\n", err)
		os.Exit(1)
	}

	htmlPath := strings.TrimSuffix(*outPath, filepath.Ext(*outPath)) + ".html"
	if err := os.WriteFile(htmlPath, []byte(doc), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write html failed: %v\n", err)
		os.Exit(1)
	}

	jsonPath := strings.TrimSuffix(*outPath, filepath.Ext(*outPath)) + ".json"
	if data, err := json.MarshalIndent(resume, "", "  "); err == nil {
		_ = os.WriteFile(jsonPath, data, 0o644)
	}

	if *htmlOnly {
		fmt.Printf("OK: wrote %s\n", htmlPath)
		return
	}

	renderer := export.NewChromeRenderer(os.Getenv("CHROME_PATH"))
	pdf, err := renderer.RenderPDF(context.Background(), doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pdf render failed: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, pdf, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write pdf failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s\n", *outPath)
}

func sampleResume() resumes.Resume {
	r := resumes.NewResume("demo-user", "Sample Resume")
	r.ProfileInfo = resumes.ProfileInfo{
		FullName:    "Jordan Rivers",
		Designation: "Senior Backend Engineer",
		Summary:     "Engineer with eight years of experience building APIs and data pipelines.",
	}
	r.ContactInfo = resumes.ContactInfo{
		Email:    "jordan.rivers@example.com",
		Phone:    "555-0100",
		LinkedIn: "https://linkedin.com/in/jordanrivers",
		GitHub:   "https://github.com/jordanrivers",
	}
	r.WorkExperience = []resumes.Experience{
		{
			Company:     "Acme Corp",
			Role:        "Senior Backend Engineer",
			StartDate:   "2021",
			EndDate:     "",
			Description: "Leads the billing platform team.",
		},
		{
			Company:     "Globex",
			Role:        "Backend Engineer",
			StartDate:   "2017",
			EndDate:     "2021",
			Description: "Built order processing services.",
		},
	}
	r.Education = []resumes.Education{
		{Institution: "State University", Degree: "BSc Computer Science", StartDate: "2013", EndDate: "2017"},
	}
	r.Skills = []resumes.Skill{
		{Name: "Go"}, {Name: "PostgreSQL"}, {Name: "Distributed systems"},
	}
	r.Projects = []resumes.Project{
		{
			Title:       "Open Ledger",
			Description: "Double-entry accounting library.",
			GitHub:      "https://github.com/jordanrivers/open-ledger",
		},
	}
	r.Hobbies = []string{"Climbing", "Chess"}
	return r
}
