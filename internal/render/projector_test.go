package render

import (
	"strings"
	"testing"

	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/templates"
)

func sampleResume() resumes.Resume {
	return resumes.Resume{
		Title: "Backend Engineer Resume",
		ProfileInfo: resumes.ProfileInfo{
			FullName:    "Ada Lovelace",
			Designation: "Backend Engineer",
			Summary:     "Builds reliable services.",
		},
		ContactInfo: resumes.ContactInfo{
			Email: "ada@example.com",
			Phone: "555-0100",
		},
		WorkExperience: []resumes.Experience{
			{Company: "Acme", Role: "Engineer", StartDate: "2020", EndDate: ""},
		},
		Skills: []resumes.Skill{{Name: "Go"}},
	}
}

func TestProjectIsDeterministic(t *testing.T) {
	r := sampleResume()
	tmpl := templates.Default()

	first := Project(r, tmpl, ModeScreen).HTML()
	for i := 0; i < 5; i++ {
		if got := Project(r, tmpl, ModeScreen).HTML(); got != first {
			t.Fatalf("projection %d differs from first:\n%s\nvs\n%s", i, got, first)
		}
	}
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	r := sampleResume()
	before := r.ProfileInfo

	Project(r, templates.Default(), ModePrint)
	if r.ProfileInfo != before {
		t.Fatalf("profile mutated: %+v", r.ProfileInfo)
	}
}

func TestOpenEndedDateRangeKeepsSeparator(t *testing.T) {
	out := Project(sampleResume(), templates.Default(), ModeScreen).HTML()
	if !strings.Contains(out, "2020 - ") {
		t.Fatalf("expected literal open-ended range in output, got:\n%s", out)
	}
}

func TestPlaceholdersWhenProfileEmpty(t *testing.T) {
	r := resumes.Resume{}
	for _, mode := range []Mode{ModeScreen, ModePrint} {
		out := Project(r, templates.Default(), mode).HTML()
		if !strings.Contains(out, "Your Name") {
			t.Fatalf("mode %s: missing name placeholder:\n%s", mode, out)
		}
		if !strings.Contains(out, "Your Title") {
			t.Fatalf("mode %s: missing title placeholder:\n%s", mode, out)
		}
	}
}

func TestIncompleteEntriesAreSkipped(t *testing.T) {
	r := resumes.Resume{
		WorkExperience: []resumes.Experience{
			{Company: "Acme"}, // no role
			{Role: "Engineer"}, // no company
		},
		Education: []resumes.Education{{Institution: "MIT"}},
		Skills:    []resumes.Skill{{Name: ""}},
		Projects:  []resumes.Project{{Description: "untitled"}},
	}
	out := Project(r, templates.Default(), ModeScreen).HTML()

	for _, title := range []string{"Work Experience", "Education", "Skills", "Projects"} {
		if strings.Contains(out, title) {
			t.Fatalf("section %q should be omitted when it has no complete entries:\n%s", title, out)
		}
	}
}

func TestSectionInsertionOrderPreserved(t *testing.T) {
	r := sampleResume()
	r.WorkExperience = append(r.WorkExperience,
		resumes.Experience{Company: "Globex", Role: "Lead", StartDate: "2022", EndDate: "2024"},
	)
	out := Project(r, templates.Default(), ModeScreen).HTML()

	acme := strings.Index(out, "Acme")
	globex := strings.Index(out, "Globex")
	if acme < 0 || globex < 0 || acme > globex {
		t.Fatalf("expected Acme before Globex, got indexes %d and %d:\n%s", acme, globex, out)
	}
}

func TestFieldValuesAreEscaped(t *testing.T) {
	r := resumes.Resume{
		ProfileInfo: resumes.ProfileInfo{
			FullName:    `<script>alert("x")</script>`,
			Designation: "A & B",
		},
	}
	out := Project(r, templates.Default(), ModeScreen).HTML()

	if strings.Contains(out, "<script>") {
		t.Fatalf("unescaped markup in output:\n%s", out)
	}
	if !strings.Contains(out, "&lt;script&gt;") {
		t.Fatalf("expected escaped script tag:\n%s", out)
	}
	if !strings.Contains(out, "A &amp; B") {
		t.Fatalf("expected escaped ampersand:\n%s", out)
	}
}

func TestCopyAffordancesScreenOnly(t *testing.T) {
	r := sampleResume()
	tmpl := templates.Default()

	screen := Project(r, tmpl, ModeScreen).HTML()
	if !strings.Contains(screen, `data-copy="ada@example.com"`) {
		t.Fatalf("screen mode should mark email as copyable:\n%s", screen)
	}

	printed := Project(r, tmpl, ModePrint).HTML()
	if strings.Contains(printed, "data-copy") {
		t.Fatalf("print mode should carry no copy affordances:\n%s", printed)
	}
}

func TestTemplateStylesAppliedInline(t *testing.T) {
	tmpl := templates.Template{
		Styles: map[string]templates.StyleMap{
			"name": {"fontSize": "2rem", "fontWeight": "bold"},
		},
	}
	out := Project(sampleResume(), tmpl, ModeScreen).HTML()
	if !strings.Contains(out, `style="font-size:2rem;font-weight:bold"`) {
		t.Fatalf("expected inline style from template map:\n%s", out)
	}
}

func TestUnknownStyleSectionRendersUnstyled(t *testing.T) {
	tmpl := templates.Template{Styles: map[string]templates.StyleMap{}}
	out := Project(sampleResume(), tmpl, ModeScreen).HTML()
	if strings.Contains(out, "style=") {
		t.Fatalf("expected no inline styles with empty template:\n%s", out)
	}
}

func TestPrintDocumentIsSelfContained(t *testing.T) {
	doc := PrintDocument(sampleResume(), templates.Default())

	if !strings.HasPrefix(doc, "<!DOCTYPE html>") {
		t.Fatalf("expected full document, got:\n%.100s", doc)
	}
	for _, want := range []string{"@page", "size: A4", "Ada Lovelace", "<title>Backend Engineer Resume</title>"} {
		if !strings.Contains(doc, want) {
			t.Fatalf("print document missing %q:\n%s", want, doc)
		}
	}
	for _, forbidden := range []string{"http://", "https://", "<link", "src="} {
		if strings.Contains(doc, forbidden) {
			t.Fatalf("print document should have no external references, found %q", forbidden)
		}
	}
}
