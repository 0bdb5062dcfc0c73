package render

import (
	"fmt"

	"resume-builder-backend/internal/resumes"
	"resume-builder-backend/internal/templates"
)

// Mode selects the projection target. Screen output carries interaction
// affordances (click-to-copy markers on contact details); print output is
// plain markup suitable for a self-contained document.
type Mode string

const (
	ModeScreen Mode = "screen"
	ModePrint  Mode = "print"
)

const (
	placeholderName  = "Your Name"
	placeholderTitle = "Your Title"
)

// Project builds the document tree for a resume rendered with the given
// template. It is a pure function of its inputs: the resume is not
// mutated and repeated calls produce identical trees.
func Project(r resumes.Resume, tmpl templates.Template, mode Mode) *Node {
	p := projector{tmpl: tmpl, mode: mode}
	return p.resume(r)
}

type projector struct {
	tmpl templates.Template
	mode Mode
}

func (p *projector) style(section string) templates.StyleMap {
	return p.tmpl.Styles[section]
}

func (p *projector) resume(r resumes.Resume) *Node {
	root := el("div").withAttr("class", "resume-preview")

	root.append(p.header(r.ProfileInfo))

	if contact := p.contact(r.ContactInfo); contact != nil {
		root.append(contact)
	}
	if section := p.experience(r.WorkExperience); section != nil {
		root.append(section)
	}
	if section := p.education(r.Education); section != nil {
		root.append(section)
	}
	if section := p.skills(r.Skills); section != nil {
		root.append(section)
	}
	if section := p.projects(r.Projects); section != nil {
		root.append(section)
	}
	if section := p.hobbies(r.Hobbies); section != nil {
		root.append(section)
	}
	return root
}

func (p *projector) header(info resumes.ProfileInfo) *Node {
	name := info.FullName
	if name == "" {
		name = placeholderName
	}
	title := info.Designation
	if title == "" {
		title = placeholderTitle
	}

	header := el("div",
		el("h1", text(name)).withAttr("class", "name").withStyle(p.style("name")),
		el("p", text(title)).withAttr("class", "title").withStyle(p.style("title")),
	).withAttr("class", "header").withStyle(p.style("header"))

	if info.Summary != "" {
		header.append(
			el("p", text(info.Summary)).withAttr("class", "summary").withStyle(p.style("summary")),
		)
	}
	return header
}

func (p *projector) contact(info resumes.ContactInfo) *Node {
	type entry struct {
		label string
		value string
		copy  bool
	}
	entries := []entry{
		{"email", info.Email, true},
		{"phone", info.Phone, true},
		{"linkedin", info.LinkedIn, false},
		{"github", info.GitHub, false},
		{"website", info.Website, false},
	}

	node := el("div").withAttr("class", "contact-info").withStyle(p.style("contactInfo"))
	any := false
	for _, e := range entries {
		if e.value == "" {
			continue
		}
		any = true
		item := el("span", text(e.value)).withAttr("class", "contact-item")
		if p.mode == ModeScreen && e.copy {
			item.withAttr("data-copy", e.value).withAttr("title", "Click to copy "+e.label)
		}
		node.append(item)
	}
	if !any {
		return nil
	}
	return node
}

func (p *projector) section(title string, items ...*Node) *Node {
	node := el("div",
		el("h3", text(title)).withAttr("class", "section-title").withStyle(p.style("sectionTitle")),
	).withAttr("class", "section").withStyle(p.style("section"))
	return node.append(items...)
}

func (p *projector) experience(list []resumes.Experience) *Node {
	var items []*Node
	for _, exp := range list {
		if !exp.Complete() {
			continue
		}
		head := el("div",
			el("h4", text(exp.Role)).withAttr("class", "item-title").withStyle(p.style("itemTitle")),
		).withAttr("class", "item-header").withStyle(p.style("itemHeader"))
		if exp.StartDate != "" || exp.EndDate != "" {
			head.append(
				el("span", text(dateRange(exp.StartDate, exp.EndDate))).
					withAttr("class", "date").withStyle(p.style("itemDates")),
			)
		}
		item := el("div",
			head,
			el("p", text(exp.Company)).withAttr("class", "company").withStyle(p.style("itemSubtitle")),
		).withAttr("class", "experience-item").withStyle(p.style("item"))
		if exp.Description != "" {
			item.append(
				el("p", text(exp.Description)).withAttr("class", "description").withStyle(p.style("itemDescription")),
			)
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil
	}
	return p.section("Work Experience", items...)
}

func (p *projector) education(list []resumes.Education) *Node {
	var items []*Node
	for _, edu := range list {
		if !edu.Complete() {
			continue
		}
		head := el("div",
			el("h4", text(edu.Degree)).withAttr("class", "item-title").withStyle(p.style("itemTitle")),
		).withAttr("class", "item-header").withStyle(p.style("itemHeader"))
		if edu.StartDate != "" || edu.EndDate != "" {
			head.append(
				el("span", text(dateRange(edu.StartDate, edu.EndDate))).
					withAttr("class", "date").withStyle(p.style("itemDates")),
			)
		}
		item := el("div",
			head,
			el("p", text(edu.Institution)).withAttr("class", "institution").withStyle(p.style("itemSubtitle")),
		).withAttr("class", "education-item").withStyle(p.style("item"))
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil
	}
	return p.section("Education", items...)
}

func (p *projector) skills(list []resumes.Skill) *Node {
	grid := el("div").withAttr("class", "skills-grid").withStyle(p.style("skillsGrid"))
	count := 0
	for _, skill := range list {
		if !skill.Complete() {
			continue
		}
		count++
		grid.append(
			el("div",
				el("span", text(skill.Name)).withAttr("class", "skill-name").withStyle(p.style("skillName")),
			).withAttr("class", "skill-item").withStyle(p.style("skillItem")),
		)
	}
	if count == 0 {
		return nil
	}
	return p.section("Skills", grid)
}

func (p *projector) projects(list []resumes.Project) *Node {
	var items []*Node
	for _, proj := range list {
		if !proj.Complete() {
			continue
		}
		item := el("div",
			el("h4", text(proj.Title)).withAttr("class", "item-title").withStyle(p.style("itemTitle")),
		).withAttr("class", "project-item").withStyle(p.style("item"))
		if proj.Description != "" {
			item.append(
				el("p", text(proj.Description)).withAttr("class", "description").withStyle(p.style("itemDescription")),
			)
		}
		links := el("div").withAttr("class", "project-links")
		hasLink := false
		if proj.GitHub != "" {
			hasLink = true
			links.append(el("a", text("GitHub")).withAttr("href", proj.GitHub))
		}
		if proj.LiveDemo != "" {
			hasLink = true
			links.append(el("a", text("Live Demo")).withAttr("href", proj.LiveDemo))
		}
		if hasLink {
			item.append(links)
		}
		items = append(items, item)
	}
	if len(items) == 0 {
		return nil
	}
	return p.section("Projects", items...)
}

func (p *projector) hobbies(list []string) *Node {
	node := el("div").withAttr("class", "hobbies")
	count := 0
	for _, hobby := range list {
		if hobby == "" {
			continue
		}
		count++
		node.append(el("span", text(hobby)).withAttr("class", "hobby-tag"))
	}
	if count == 0 {
		return nil
	}
	return p.section("Hobbies", node)
}

// dateRange renders the start and end verbatim. An open-ended entry keeps
// the trailing separator, e.g. "2020 - ".
func dateRange(start, end string) string {
	return fmt.Sprintf("%s - %s", start, end)
}
