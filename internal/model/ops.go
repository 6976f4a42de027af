package model

// Field names accepted by SetField and the per-item update operations. They
// match the JSON names of the document so the form can bind inputs by name.
const (
	FieldFullName = "fullName"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldPhoto    = "photo"
	FieldSummary  = "summary"

	FieldCompany     = "company"
	FieldPosition    = "position"
	FieldStartDate   = "startDate"
	FieldEndDate     = "endDate"
	FieldDescription = "description"

	FieldSchool         = "school"
	FieldDegree         = "degree"
	FieldStudy          = "field"
	FieldGraduationDate = "graduationDate"
)

// SetField replaces a scalar top-level field. Unknown names leave the resume
// unchanged.
func (r ResumeData) SetField(name, value string) ResumeData {
	out := r.Clone()
	switch name {
	case FieldFullName:
		out.FullName = value
	case FieldEmail:
		out.Email = value
	case FieldPhone:
		out.Phone = value
	case FieldPhoto:
		out.Photo = value
	case FieldSummary:
		out.Summary = value
	}
	return out
}

// SetPhoto stores an embedded image encoding; an empty string removes it.
func (r ResumeData) SetPhoto(encoded string) ResumeData {
	return r.SetField(FieldPhoto, encoded)
}

// AddExperience appends an empty item and returns the new resume together
// with the id of the appended item.
func (r ResumeData) AddExperience() (ResumeData, string) {
	out := r.Clone()
	id := out.freshExperienceID()
	out.Experience = append(out.Experience, ExperienceItem{ID: id})
	return out, id
}

func (r ResumeData) RemoveExperience(id string) ResumeData {
	out := r.Clone()
	for i, it := range out.Experience {
		if it.ID == id {
			out.Experience = append(out.Experience[:i], out.Experience[i+1:]...)
			break
		}
	}
	return out
}

// FindExperience returns the item with the given id.
func (r ResumeData) FindExperience(id string) (ExperienceItem, bool) {
	for _, it := range r.Experience {
		if it.ID == id {
			return it, true
		}
	}
	return ExperienceItem{}, false
}

func (r ResumeData) UpdateExperienceField(id, field, value string) ResumeData {
	out := r.Clone()
	for i := range out.Experience {
		if out.Experience[i].ID != id {
			continue
		}
		it := &out.Experience[i]
		switch field {
		case FieldCompany:
			it.Company = value
		case FieldPosition:
			it.Position = value
		case FieldStartDate:
			it.StartDate = value
		case FieldEndDate:
			it.EndDate = value
		case FieldDescription:
			it.Description = value
		}
		break
	}
	return out
}

// AddEducation appends an empty item and returns the new resume together
// with the id of the appended item.
func (r ResumeData) AddEducation() (ResumeData, string) {
	out := r.Clone()
	id := out.freshEducationID()
	out.Education = append(out.Education, EducationItem{ID: id})
	return out, id
}

func (r ResumeData) RemoveEducation(id string) ResumeData {
	out := r.Clone()
	for i, it := range out.Education {
		if it.ID == id {
			out.Education = append(out.Education[:i], out.Education[i+1:]...)
			break
		}
	}
	return out
}

func (r ResumeData) UpdateEducationField(id, field, value string) ResumeData {
	out := r.Clone()
	for i := range out.Education {
		if out.Education[i].ID != id {
			continue
		}
		it := &out.Education[i]
		switch field {
		case FieldSchool:
			it.School = value
		case FieldDegree:
			it.Degree = value
		case FieldStudy:
			it.Field = value
		case FieldGraduationDate:
			it.GraduationDate = value
		}
		break
	}
	return out
}

// HasSkill reports an exact, case-sensitive match.
func (r ResumeData) HasSkill(value string) bool {
	for _, s := range r.Skills {
		if s == value {
			return true
		}
	}
	return false
}

// AddSkill appends value unless it is already present.
func (r ResumeData) AddSkill(value string) ResumeData {
	out := r.Clone()
	if out.HasSkill(value) {
		return out
	}
	out.Skills = append(out.Skills, value)
	return out
}

// RemoveSkill drops the first exact match.
func (r ResumeData) RemoveSkill(value string) ResumeData {
	out := r.Clone()
	for i, s := range out.Skills {
		if s == value {
			out.Skills = append(out.Skills[:i], out.Skills[i+1:]...)
			break
		}
	}
	return out
}

// Normalize restores the model invariants on an imported document: later
// duplicate skills are dropped and empty or colliding item ids are replaced.
func (r ResumeData) Normalize() ResumeData {
	out := r.Clone()

	seen := map[string]bool{}
	for i := range out.Experience {
		id := out.Experience[i].ID
		if id == "" || seen[id] {
			id = out.freshExperienceID()
			out.Experience[i].ID = id
		}
		seen[id] = true
	}

	seen = map[string]bool{}
	for i := range out.Education {
		id := out.Education[i].ID
		if id == "" || seen[id] {
			id = out.freshEducationID()
			out.Education[i].ID = id
		}
		seen[id] = true
	}

	skills := make([]string, 0, len(out.Skills))
	have := map[string]bool{}
	for _, s := range out.Skills {
		if have[s] {
			continue
		}
		have[s] = true
		skills = append(skills, s)
	}
	out.Skills = skills
	return out
}

func (r ResumeData) freshExperienceID() string {
	for {
		id := newID()
		if _, taken := r.FindExperience(id); !taken {
			return id
		}
	}
}

func (r ResumeData) freshEducationID() string {
	for {
		id := newID()
		taken := false
		for _, it := range r.Education {
			if it.ID == id {
				taken = true
				break
			}
		}
		if !taken {
			return id
		}
	}
}
