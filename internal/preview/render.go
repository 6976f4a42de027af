// Package preview renders a resume into one of the visual templates.
package preview

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"resume-builder/internal/model"
)

// Template names a layout variant.
type Template string

const (
	Modern  Template = "modern"
	Classic Template = "classic"
	Minimal Template = "minimal"
)

// ErrUnknownTemplate is returned for a template name that is not one of
// Templates.
var ErrUnknownTemplate = errors.New("unknown template")

// Templates lists every variant in display order.
var Templates = []Template{Modern, Classic, Minimal}

// RootID is the id of the element wrapping the rendered resume.
const RootID = "resume-preview"

// Placeholder texts.
const (
	NamePlaceholder       = "Your Name"
	SummaryPlaceholder    = "Add a professional summary to highlight your key achievements and goals..."
	ExperiencePlaceholder = "Add work experience to see it reflected here..."
	EducationPlaceholder  = "Add education to see it reflected here..."
	SkillsPlaceholder     = "Add skills to see them reflected here..."
	PresentLabel          = "Present"
)

// ParseTemplate maps a user supplied name to a Template. An empty name
// selects Modern.
func ParseTemplate(name string) (Template, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", string(Modern):
		return Modern, nil
	case string(Classic):
		return Classic, nil
	case string(Minimal):
		return Minimal, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownTemplate, name)
}

// Separator returns the string joining email and phone in the contact line.
func (t Template) Separator() string {
	switch t {
	case Classic:
		return " • "
	case Minimal:
		return " · "
	default:
		return " | "
	}
}

// Document is a rendered resume: a standalone HTML page whose resume root is
// the element with id RootID.
type Document struct {
	Template Template
	HTML     string
}

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.New("").Funcs(template.FuncMap{
	"dateRange":   dateRange,
	"photoURL":    photoURL,
	"placeholder": placeholder,
	"join":        strings.Join,
}).ParseFS(templateFS, "templates/*.html"))

type view struct {
	Template Template
	RootID   string
	Resume   model.ResumeData
	Name     string
	Contact  string
}

// Render maps a resume and a template to a document. It has no side effects.
func Render(data model.ResumeData, t Template) (Document, error) {
	t, err := ParseTemplate(string(t))
	if err != nil {
		return Document{}, err
	}

	name := data.FullName
	if name == "" {
		name = NamePlaceholder
	}

	v := view{
		Template: t,
		RootID:   RootID,
		Resume:   data.Clone(),
		Name:     name,
		Contact:  contactLine(data, t.Separator()),
	}

	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, "layout", v); err != nil {
		return Document{}, fmt.Errorf("render %s: %w", t, err)
	}
	return Document{Template: t, HTML: buf.String()}, nil
}

func contactLine(data model.ResumeData, sep string) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{data.Email, data.Phone} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, sep)
}

func dateRange(start, end string) string {
	if end == "" {
		end = PresentLabel
	}
	return start + " - " + end
}

func placeholder(section string) string {
	switch section {
	case "summary":
		return SummaryPlaceholder
	case "experience":
		return ExperiencePlaceholder
	case "education":
		return EducationPlaceholder
	case "skills":
		return SkillsPlaceholder
	}
	return ""
}

// photoURL lets embedded images through html/template's URL filter. Anything
// that is not an inline image is dropped.
func photoURL(s string) template.URL {
	if !strings.HasPrefix(s, "data:image/") {
		return ""
	}
	return template.URL(s)
}
