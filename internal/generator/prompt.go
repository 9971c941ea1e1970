package generator

import (
	"fmt"
	"strings"

	"github.com/haseeb-240/AiResume/internal/llm"
)

const contentShape = `{
  "personalDetails": {
    "fullName": "string",
    "email": "string",
    "phone": "string",
    "location": "string",
    "linkedin": "string (optional)",
    "summary": "string"
  },
  "workExperience": [
    {
      "title": "string",
      "company": "string",
      "location": "string",
      "startDate": "string",
      "endDate": "string",
      "description": "string"
    }
  ],
  "education": [
    {
      "degree": "string",
      "institution": "string",
      "location": "string",
      "graduationYear": "string"
    }
  ],
  "skills": ["string"],
  "projects": [
    {
      "title": "string",
      "description": "string",
      "technologies": ["string"],
      "link": "string (optional)"
    }
  ]
}`

const systemPrompt = `You are a professional resume writer. You respond with a single JSON object and nothing else. The object must match this shape exactly, with every required string non-empty:
` + contentShape

// generatePrompt builds the conversation for one-click generation.
func generatePrompt(in Input) []llm.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a complete, realistic resume as JSON for the following person.\n")
	fmt.Fprintf(&b, "Full name: %s\nEmail: %s\nPhone: %s\nLocation: %s\n", in.FullName, in.Email, in.Phone, in.Location)
	fmt.Fprintf(&b, "Target job title: %s\nYears of experience: %d\nIndustry: %s\n", in.JobTitle, in.YearsOfExperience, in.Industry)
	if len(in.Skills) > 0 {
		fmt.Fprintf(&b, "Known skills: %s\n", strings.Join(in.Skills, ", "))
	}
	b.WriteString("Invent plausible work history, education and projects consistent with the experience level. Keep the professional summary to three or four sentences.")

	return []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: b.String()},
	}
}

// importPrompt builds the conversation for structuring extracted resume text.
func importPrompt(resumeText string) []llm.Message {
	return []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: "Extract the resume below into the JSON shape. Do not invent facts that are not in the text; leave optional fields empty when the text has no answer, but fill every required field from the text as faithfully as possible.\n\n" + resumeText},
	}
}

// repairPrompt asks the model to fix a previous output that failed validation.
func repairPrompt(previous []llm.Message, raw string, validationErr error) []llm.Message {
	return append(previous, llm.Message{
		Role:    "user",
		Content: fmt.Sprintf("Your previous output failed validation: %v\nPrevious output:\n%s\nReturn a corrected JSON object with the same shape.", validationErr, raw),
	})
}
