package generator

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/haseeb-240/AiResume/internal/llm"
)

type scriptedClient struct {
	replies []string
	calls   int
	prompts [][]llm.Message
}

func (s *scriptedClient) Complete(ctx context.Context, messages []llm.Message) (json.RawMessage, error) {
	s.prompts = append(s.prompts, messages)
	if s.calls >= len(s.replies) {
		return nil, errors.New("no more scripted replies")
	}
	reply := s.replies[s.calls]
	s.calls++
	return json.RawMessage(reply), nil
}

const validContentJSON = `{
  "personalDetails": {
    "fullName": "Ada Lovelace",
    "email": "ada@example.com",
    "phone": "+44 555 0100",
    "location": "London",
    "summary": "Engineer with a decade of experience."
  },
  "workExperience": [],
  "education": [],
  "skills": ["Go"],
  "projects": []
}`

func validInput() Input {
	return Input{
		FullName:          "Ada Lovelace",
		Email:             "ada@example.com",
		Phone:             "+44 555 0100",
		Location:          "London",
		JobTitle:          "Backend Engineer",
		YearsOfExperience: 10,
		Industry:          "Software",
		Skills:            []string{"Go", "Postgres"},
	}
}

func TestGenerateReturnsValidatedContent(t *testing.T) {
	client := &scriptedClient{replies: []string{validContentJSON}}
	svc := NewService(client)

	got, err := svc.Generate(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got.PersonalDetails.FullName != "Ada Lovelace" {
		t.Fatalf("unexpected content: %+v", got.PersonalDetails)
	}
	if client.calls != 1 {
		t.Fatalf("expected a single completion, got %d", client.calls)
	}
}

func TestGenerateRepairsInvalidContentOnce(t *testing.T) {
	broken := strings.Replace(validContentJSON, `"ada@example.com"`, `"not-an-email"`, 1)
	client := &scriptedClient{replies: []string{broken, validContentJSON}}
	svc := NewService(client)

	got, err := svc.Generate(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got.PersonalDetails.Email != "ada@example.com" {
		t.Fatalf("repair attempt not used: %+v", got.PersonalDetails)
	}
	if client.calls != 2 {
		t.Fatalf("expected exactly one repair attempt, got %d calls", client.calls)
	}

	// The repair prompt must carry the validation failure back to the model.
	last := client.prompts[1]
	if !strings.Contains(last[len(last)-1].Content, "personalDetails.email") {
		t.Fatalf("repair prompt missing validation detail: %q", last[len(last)-1].Content)
	}
}

func TestGenerateFailsAfterSecondBadOutput(t *testing.T) {
	broken := strings.Replace(validContentJSON, `"ada@example.com"`, `""`, 1)
	client := &scriptedClient{replies: []string{broken, broken}}
	svc := NewService(client)

	if _, err := svc.Generate(context.Background(), validInput()); err == nil {
		t.Fatal("expected failure after repair attempt")
	}
	if client.calls != 2 {
		t.Fatalf("expected exactly two completions, got %d", client.calls)
	}
}

func TestGenerateAcceptsJSONWrappedInProse(t *testing.T) {
	client := &scriptedClient{replies: []string{"Here is the resume:\n" + validContentJSON + "\nHope this helps!"}}
	svc := NewService(client)

	if _, err := svc.Generate(context.Background(), validInput()); err != nil {
		t.Fatalf("expected embedded JSON object to parse, got %v", err)
	}
}

func TestGenerateValidatesInput(t *testing.T) {
	svc := NewService(&scriptedClient{})
	in := validInput()
	in.JobTitle = ""

	if _, err := svc.Generate(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFromResumeTextRejectsEmpty(t *testing.T) {
	svc := NewService(&scriptedClient{})
	if _, err := svc.FromResumeText(context.Background(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFromResumeTextStructuresText(t *testing.T) {
	client := &scriptedClient{replies: []string{validContentJSON}}
	svc := NewService(client)

	got, err := svc.FromResumeText(context.Background(), "Ada Lovelace, engineer, London")
	if err != nil {
		t.Fatalf("FromResumeText: %v", err)
	}
	if got.PersonalDetails.FullName == "" {
		t.Fatalf("expected structured content")
	}
	if !strings.Contains(client.prompts[0][1].Content, "Ada Lovelace, engineer, London") {
		t.Fatalf("prompt missing resume text")
	}
}

func TestGenerateWithoutClient(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.Generate(context.Background(), validInput()); !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
