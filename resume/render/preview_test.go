package render

import (
	"strings"
	"testing"
)

func assertContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q", needle)
	}
}

func assertNotContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		t.Fatalf("expected output to not contain %q", needle)
	}
}

func TestPreviewRendersAllSections(t *testing.T) {
	html := Preview(sampleContent(), TemplateModern)

	assertContains(t, html, "Ada Lovelace")
	assertContains(t, html, "ada@example.com")
	assertContains(t, html, "+44 555 0100")
	assertContains(t, html, "London")
	assertContains(t, html, "Professional Summary")
	assertContains(t, html, "Experience")
	assertContains(t, html, "Acme • Remote")
	assertContains(t, html, "2020-01 - 2022-06")
	assertContains(t, html, "Skills")
	assertContains(t, html, "Education")
	assertContains(t, html, "Projects")
	assertContains(t, html, "Technologies: Brass, Steam")
	assertContains(t, html, `href="https://example.com"`)
}

func TestPreviewOmitsEmptySectionHeadings(t *testing.T) {
	c := sampleContent()
	c.Skills = nil
	c.Education = nil
	c.Projects = nil

	html := Preview(c, TemplateProfessional)
	assertNotContains(t, html, "<h2>Skills</h2>")
	assertNotContains(t, html, "<h2>Education</h2>")
	assertNotContains(t, html, "<h2>Projects</h2>")
	assertContains(t, html, "<h2>Experience</h2>")
}

func TestPreviewOptionalHeaderFields(t *testing.T) {
	c := sampleContent()
	html := Preview(c, TemplateMinimal)
	assertNotContains(t, html, "avatar")

	c.PersonalDetails.ProfilePicture = "data:image/png;base64,AAAA"
	c.PersonalDetails.Linkedin = "linkedin.com/in/ada"
	html = Preview(c, TemplateMinimal)
	assertContains(t, html, `class="avatar"`)
	assertContains(t, html, "linkedin.com/in/ada")
}

func TestPreviewEscapesUserText(t *testing.T) {
	c := sampleContent()
	c.PersonalDetails.FullName = `<script>alert("x")</script>`

	html := Preview(c, TemplateModern)
	assertNotContains(t, html, "<script>")
	assertContains(t, html, "&lt;script&gt;")
}

func TestPreviewIsDeterministic(t *testing.T) {
	c := sampleContent()
	if Preview(c, TemplateModern) != Preview(c, TemplateModern) {
		t.Fatal("preview output differs between identical renders")
	}
}

func TestPreviewUnknownTemplateFallsBack(t *testing.T) {
	html := Preview(sampleContent(), "vintage")
	assertContains(t, html, "resume--professional")
}
