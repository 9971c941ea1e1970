package content

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// FieldErrors maps a dotted, index-aware field path (personalDetails.email,
// workExperience.2.title) to a human-readable message, so a form layer can
// highlight each offending input.
type FieldErrors map[string]string

// Error renders the violations sorted by path.
func (e FieldErrors) Error() string {
	paths := make([]string, 0, len(e))
	for p := range e {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	parts := make([]string, 0, len(paths))
	for _, p := range paths {
		parts = append(parts, p+": "+e[p])
	}
	return "invalid resume content: " + strings.Join(parts, "; ")
}

func (e FieldErrors) add(path, msg string) {
	e[path] = msg
}

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// Validate checks a candidate against the resume content schema. It is pure
// and total: the candidate is never mutated and every violation found is
// reported, not just the first. It returns nil when the candidate is valid.
//
// Strings are not trimmed on the way through; a required field that is empty
// after trimming whitespace is a violation.
func Validate(c ResumeContent) FieldErrors {
	errs := make(FieldErrors)

	requireText(errs, "personalDetails.fullName", c.PersonalDetails.FullName)
	requireText(errs, "personalDetails.phone", c.PersonalDetails.Phone)
	requireText(errs, "personalDetails.location", c.PersonalDetails.Location)
	requireText(errs, "personalDetails.summary", c.PersonalDetails.Summary)
	if strings.TrimSpace(c.PersonalDetails.Email) == "" {
		errs.add("personalDetails.email", "is required")
	} else if !emailPattern.MatchString(c.PersonalDetails.Email) {
		errs.add("personalDetails.email", "must be a valid email address")
	}
	if pic := c.PersonalDetails.ProfilePicture; pic != "" && !strings.HasPrefix(pic, "data:image/") {
		errs.add("personalDetails.profilePicture", "must be an inline data:image URI")
	}

	for i, exp := range c.WorkExperience {
		prefix := fmt.Sprintf("workExperience.%d.", i)
		requireText(errs, prefix+"title", exp.Title)
		requireText(errs, prefix+"company", exp.Company)
		requireText(errs, prefix+"location", exp.Location)
		requireText(errs, prefix+"startDate", exp.StartDate)
		requireText(errs, prefix+"endDate", exp.EndDate)
		requireText(errs, prefix+"description", exp.Description)
	}

	for i, edu := range c.Education {
		prefix := fmt.Sprintf("education.%d.", i)
		requireText(errs, prefix+"degree", edu.Degree)
		requireText(errs, prefix+"institution", edu.Institution)
		requireText(errs, prefix+"location", edu.Location)
		requireText(errs, prefix+"graduationYear", edu.GraduationYear)
	}

	for i, skill := range c.Skills {
		requireText(errs, fmt.Sprintf("skills.%d", i), skill)
	}

	for i, project := range c.Projects {
		prefix := fmt.Sprintf("projects.%d.", i)
		requireText(errs, prefix+"title", project.Title)
		requireText(errs, prefix+"description", project.Description)
		for j, tech := range project.Technologies {
			requireText(errs, fmt.Sprintf("%stechnologies.%d", prefix, j), tech)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func requireText(errs FieldErrors, path, value string) {
	if strings.TrimSpace(value) == "" {
		errs.add(path, "is required")
	}
}
