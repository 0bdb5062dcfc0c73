package render

import (
	"html"
	"strings"

	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/templates"
)

// printCSS is the base stylesheet for the self-contained print document.
// Template style maps are applied inline on top of these defaults.
const printCSS = `body {
  font-family: Arial, sans-serif;
  line-height: 1.6;
  padding: 20px;
  color: #333;
  max-width: 800px;
  margin: 0 auto;
  -webkit-print-color-adjust: exact;
  print-color-adjust: exact;
}
.header { text-align: center; margin-bottom: 24px; }
.name { font-size: 2rem; font-weight: bold; color: #111827; margin-bottom: 8px; }
.title { font-size: 1.25rem; color: #6b7280; margin-bottom: 16px; }
.summary { color: #374151; line-height: 1.5; }
.contact-info {
  text-align: center;
  margin-bottom: 24px;
  font-size: 0.875rem;
  padding: 16px 0;
  border-bottom: 1px solid #e5e7eb;
}
.contact-info span { margin: 0 8px; display: inline-block; }
.section { margin-bottom: 24px; }
.section-title {
  font-size: 1.125rem;
  font-weight: 600;
  color: #111827;
  margin-bottom: 12px;
  border-bottom: 2px solid #e5e7eb;
  padding-bottom: 4px;
}
.experience-item, .education-item, .project-item { margin-bottom: 16px; }
.experience-item h4, .education-item h4, .project-item h4 {
  font-weight: 600;
  color: #111827;
  margin-bottom: 4px;
}
.company, .institution { color: #6b7280; font-weight: 500; margin-bottom: 4px; }
.date { color: #9ca3af; font-size: 0.875rem; margin-bottom: 8px; }
.description { color: #374151; line-height: 1.5; }
.skills-grid { display: flex; flex-direction: column; gap: 8px; }
.skill-item {
  padding: 8px 12px;
  background-color: #f8fafc;
  border-radius: 6px;
  margin-bottom: 8px;
  font-weight: 500;
}
.hobby-tag {
  display: inline-block;
  padding: 6px 12px;
  background-color: #fef3c7;
  color: #92400e;
  border-radius: 9999px;
  font-size: 0.875rem;
  font-weight: 500;
  margin: 4px;
}
.project-links { margin-top: 8px; font-size: 0.875rem; }
.project-links a { color: #3b82f6; text-decoration: none; font-weight: 500; margin-right: 16px; }
.item-header { display: flex; justify-content: space-between; align-items: flex-start; margin-bottom: 8px; }
@media print {
  @page { margin: 0.5in; size: A4; }
  .page-break { page-break-before: always; }
  .avoid-break { page-break-inside: avoid; }
}
`

// PrintDocument projects the resume in print mode and wraps it as a
// complete standalone HTML page. The result has no external references,
// so a headless browser can render it straight from a local file.
func PrintDocument(r resumes.Resume, tmpl templates.Template) string {
	body := Project(r, tmpl, ModePrint).HTML()

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	b.WriteString(html.EscapeString(documentTitle(r)))
	b.WriteString("</title>\n<style>\n")
	b.WriteString(printCSS)
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

func documentTitle(r resumes.Resume) string {
	if r.Title != "" {
		return r.Title
	}
	return "Resume"
}
