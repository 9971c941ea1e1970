package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/haseeb-240/AiResume/internal/llm"
	"github.com/haseeb-240/AiResume/internal/shared/metrics"
	"github.com/haseeb-240/AiResume/resume/content"
)

// Input captures the one-click generation form.
type Input struct {
	FullName          string
	Email             string
	Phone             string
	Location          string
	JobTitle          string
	YearsOfExperience int
	Industry          string
	Skills            []string
}

// ErrInvalidInput marks missing or malformed generation inputs.
var ErrInvalidInput = errors.New("invalid generation input")

// Service turns LLM output into validated resume content.
type Service struct {
	Client llm.Client
}

// NewService constructs a Service.
func NewService(client llm.Client) *Service {
	return &Service{Client: client}
}

// Generate produces full resume content from the one-click form. If the first
// model output fails validation, one repair attempt is made with the
// validation errors included in the prompt.
func (s *Service) Generate(ctx context.Context, in Input) (content.ResumeContent, error) {
	if err := in.validate(); err != nil {
		return content.ResumeContent{}, err
	}
	metrics.IncGenerationStarted()

	c, err := s.complete(ctx, generatePrompt(in))
	if err != nil {
		metrics.IncGenerationFailed()
		return content.ResumeContent{}, err
	}
	metrics.IncGenerationCompleted()
	return c, nil
}

// FromResumeText structures extracted resume text into validated content.
func (s *Service) FromResumeText(ctx context.Context, resumeText string) (content.ResumeContent, error) {
	if strings.TrimSpace(resumeText) == "" {
		return content.ResumeContent{}, fmt.Errorf("%w: resume text is empty", ErrInvalidInput)
	}
	metrics.IncGenerationStarted()

	c, err := s.complete(ctx, importPrompt(resumeText))
	if err != nil {
		metrics.IncGenerationFailed()
		return content.ResumeContent{}, err
	}
	metrics.IncGenerationCompleted()
	return c, nil
}

func (s *Service) complete(ctx context.Context, messages []llm.Message) (content.ResumeContent, error) {
	if s.Client == nil {
		return content.ResumeContent{}, llm.ErrNotConfigured
	}

	raw, err := s.Client.Complete(ctx, messages)
	if err != nil {
		return content.ResumeContent{}, err
	}

	c, parseErr := parseContent(raw)
	if parseErr == nil {
		return c, nil
	}

	// One repair round: feed the failure back to the model.
	raw, err = s.Client.Complete(ctx, repairPrompt(messages, string(raw), parseErr))
	if err != nil {
		return content.ResumeContent{}, err
	}
	return parseContent(raw)
}

func parseContent(raw json.RawMessage) (content.ResumeContent, error) {
	payload, err := extractJSONObject(string(raw))
	if err != nil {
		return content.ResumeContent{}, err
	}
	var c content.ResumeContent
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		return content.ResumeContent{}, fmt.Errorf("decode resume content: %w", err)
	}
	if errs := content.Validate(c); errs != nil {
		return content.ResumeContent{}, errs
	}
	return c, nil
}

func extractJSONObject(raw string) (string, error) {
	payload := strings.TrimSpace(raw)
	if payload == "" {
		return "", errors.New("empty llm response")
	}
	if json.Valid([]byte(payload)) {
		return payload, nil
	}

	start := strings.Index(payload, "{")
	end := strings.LastIndex(payload, "}")
	if start == -1 || end == -1 || end <= start {
		return "", errors.New("no json object found")
	}

	candidate := payload[start : end+1]
	if !json.Valid([]byte(candidate)) {
		return "", errors.New("invalid json object")
	}
	return candidate, nil
}

func (in Input) validate() error {
	if strings.TrimSpace(in.FullName) == "" {
		return fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.JobTitle) == "" {
		return fmt.Errorf("%w: job title is required", ErrInvalidInput)
	}
	if in.YearsOfExperience < 0 {
		return fmt.Errorf("%w: years of experience must not be negative", ErrInvalidInput)
	}
	return nil
}
