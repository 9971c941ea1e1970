package content

import (
	"reflect"
	"testing"
)

func validContent() ResumeContent {
	return ResumeContent{
		PersonalDetails: PersonalDetails{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Phone:    "+1 555 0100",
			Location: "London",
			Linkedin: "https://linkedin.com/in/ada",
			Summary:  "Engineer with a bias for shipping.",
		},
		WorkExperience: []WorkExperienceEntry{
			{
				Title:       "Engineer",
				Company:     "Acme",
				Location:    "Remote",
				StartDate:   "2020-01",
				EndDate:     "2022-06",
				Description: "Built things",
			},
		},
		Education: []EducationEntry{
			{Degree: "BSc Mathematics", Institution: "UCL", Location: "London", GraduationYear: "2018"},
		},
		Skills: []string{"Go", "Rust"},
		Projects: []ProjectEntry{
			{Title: "Engine", Description: "Difference engine", Technologies: []string{"Brass", "Steam"}, Link: "https://example.com"},
		},
	}
}

func TestValidateAcceptsValidContentWithoutMutation(t *testing.T) {
	c := validContent()
	snapshot := c.Clone()

	if errs := Validate(c); errs != nil {
		t.Fatalf("expected valid content, got: %v", errs)
	}
	if !reflect.DeepEqual(c, snapshot) {
		t.Fatalf("validation mutated the candidate")
	}
}

func TestValidateAllowsEmptySections(t *testing.T) {
	c := validContent()
	c.WorkExperience = nil
	c.Education = []EducationEntry{}
	c.Skills = nil
	c.Projects = nil

	if errs := Validate(c); errs != nil {
		t.Fatalf("empty sections must be valid, got: %v", errs)
	}
}

func TestValidateRejectsMalformedEmail(t *testing.T) {
	c := validContent()
	c.PersonalDetails.Email = "not-an-email"

	errs := Validate(c)
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	if _, ok := errs["personalDetails.email"]; !ok {
		t.Fatalf("expected error at personalDetails.email, got: %v", errs)
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	c := validContent()
	c.PersonalDetails.FullName = "   "
	c.PersonalDetails.Email = ""
	c.WorkExperience = append(c.WorkExperience, WorkExperienceEntry{}, WorkExperienceEntry{
		Title: "Lead", Company: "Acme", Location: "Remote", StartDate: "2022-07", EndDate: "2024-01", Description: "Led things",
	})
	c.Skills = []string{"Go", " "}
	c.Projects[0].Technologies = []string{"Brass", ""}

	errs := Validate(c)
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	for _, path := range []string{
		"personalDetails.fullName",
		"personalDetails.email",
		"workExperience.1.title",
		"workExperience.1.company",
		"workExperience.1.description",
		"skills.1",
		"projects.0.technologies.1",
	} {
		if _, ok := errs[path]; !ok {
			t.Fatalf("expected error at %s, got: %v", path, errs)
		}
	}
	if _, ok := errs["workExperience.0.title"]; ok {
		t.Fatalf("unexpected error for valid entry: %v", errs)
	}
}

func TestValidateRejectsNonDataURIProfilePicture(t *testing.T) {
	c := validContent()
	c.PersonalDetails.ProfilePicture = "https://example.com/me.png"

	errs := Validate(c)
	if _, ok := errs["personalDetails.profilePicture"]; !ok {
		t.Fatalf("expected error at personalDetails.profilePicture, got: %v", errs)
	}
}

func TestCloneIsDeepForSequences(t *testing.T) {
	c := validContent()
	clone := c.Clone()

	clone.Skills[0] = "COBOL"
	clone.WorkExperience[0].Title = "Director"
	clone.Projects[0].Technologies[0] = "Iron"

	if c.Skills[0] != "Go" || c.WorkExperience[0].Title != "Engineer" || c.Projects[0].Technologies[0] != "Brass" {
		t.Fatal("clone shares backing arrays with the original")
	}
}
