package model

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Go models for the resume document edited through the form and consumed by
// the preview renderer.

type ExperienceItem struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type EducationItem struct {
	ID             string `json:"id"`
	School         string `json:"school"`
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	GraduationDate string `json:"graduationDate"`
}

// ResumeData is the aggregate root. Every update returns a new value; slices
// of the receiver are never written to.
type ResumeData struct {
	FullName   string           `json:"fullName"`
	Email      string           `json:"email"`
	Phone      string           `json:"phone"`
	Photo      string           `json:"photo"`
	Summary    string           `json:"summary"`
	Experience []ExperienceItem `json:"experience"`
	Education  []EducationItem  `json:"education"`
	Skills     []string         `json:"skills"`
}

// New returns the empty resume a session starts with.
func New() ResumeData {
	return ResumeData{
		Experience: []ExperienceItem{},
		Education:  []EducationItem{},
		Skills:     []string{},
	}
}

// MarshalJSON emits empty arrays instead of null so the document is always
// fully defined on the wire.
func (r ResumeData) MarshalJSON() ([]byte, error) {
	type plain ResumeData
	out := plain(r.Clone())
	return json.Marshal(out)
}

// Clone returns a deep copy with non-nil slices.
func (r ResumeData) Clone() ResumeData {
	out := r
	out.Experience = append(make([]ExperienceItem, 0, len(r.Experience)), r.Experience...)
	out.Education = append(make([]EducationItem, 0, len(r.Education)), r.Education...)
	out.Skills = append(make([]string, 0, len(r.Skills)), r.Skills...)
	return out
}

func newID() string {
	return uuid.NewString()
}
