package content

// ResumeContent is the canonical resume payload. It is the durable shape
// stored on a record and the single input both renderers consume.
type ResumeContent struct {
	PersonalDetails PersonalDetails       `json:"personalDetails"`
	WorkExperience  []WorkExperienceEntry `json:"workExperience"`
	Education       []EducationEntry      `json:"education"`
	Skills          []string              `json:"skills"`
	Projects        []ProjectEntry        `json:"projects"`
}

// PersonalDetails captures contact and identity details rendered in the
// resume header. ProfilePicture, when present, is an inline data: URI.
type PersonalDetails struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Location       string `json:"location"`
	Linkedin       string `json:"linkedin,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	Summary        string `json:"summary"`
}

// WorkExperienceEntry is a work history entry. Dates are stored as opaque
// text, conventionally YYYY-MM. Display order is insertion order.
type WorkExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// EducationEntry is an education entry.
type EducationEntry struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	Location       string `json:"location"`
	GraduationYear string `json:"graduationYear"`
}

// ProjectEntry is a notable project. Technologies keep their declared order.
type ProjectEntry struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
}

// Clone returns a deep copy. Stores and the form editor hand out clones so no
// caller ever holds an alias into retained state.
func (c ResumeContent) Clone() ResumeContent {
	out := c
	if c.WorkExperience != nil {
		out.WorkExperience = make([]WorkExperienceEntry, len(c.WorkExperience))
		copy(out.WorkExperience, c.WorkExperience)
	}
	if c.Education != nil {
		out.Education = make([]EducationEntry, len(c.Education))
		copy(out.Education, c.Education)
	}
	if c.Skills != nil {
		out.Skills = make([]string, len(c.Skills))
		copy(out.Skills, c.Skills)
	}
	if c.Projects != nil {
		out.Projects = make([]ProjectEntry, len(c.Projects))
		for i, p := range c.Projects {
			cp := p
			if p.Technologies != nil {
				cp.Technologies = make([]string, len(p.Technologies))
				copy(cp.Technologies, p.Technologies)
			}
			out.Projects[i] = cp
		}
	}
	return out
}
