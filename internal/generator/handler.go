package generator

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/haseeb-240/AiResume/internal/importer"
	"github.com/haseeb-240/AiResume/internal/llm"
	"github.com/haseeb-240/AiResume/internal/shared/server/respond"
	"github.com/haseeb-240/AiResume/resume/content"
)

// maxImportBytes caps uploaded resume files at 10MB.
const maxImportBytes = 10 << 20

// Handler exposes generation endpoints. Generated content is returned to the
// caller for review, never persisted directly.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

type generateRequest struct {
	FullName          string   `json:"fullName"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Location          string   `json:"location"`
	JobTitle          string   `json:"jobTitle"`
	YearsOfExperience int      `json:"yearsOfExperience"`
	Industry          string   `json:"industry"`
	Skills            string   `json:"skills"`
}

type generateResponse struct {
	Content content.ResumeContent `json:"content"`
}

// Generate handles POST /generate-resume.
func (h *Handler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	generated, err := h.Svc.Generate(c.Request.Context(), Input{
		FullName:          req.FullName,
		Email:             req.Email,
		Phone:             req.Phone,
		Location:          req.Location,
		JobTitle:          req.JobTitle,
		YearsOfExperience: req.YearsOfExperience,
		Industry:          req.Industry,
		Skills:            splitSkills(req.Skills),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, generateResponse{Content: generated})
}

// Import handles POST /resumes/import with a multipart file upload.
func (h *Handler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if fileHeader.Size > maxImportBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file exceeds 10MB limit", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read file", nil)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImportBytes+1))
	if err != nil || len(data) > maxImportBytes {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read file", nil)
		return
	}

	text, err := importer.ExtractTextFromBytes(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		if errors.Is(err, importer.ErrUnsupportedFile) {
			respond.Error(c, http.StatusBadRequest, "validation_error", "only PDF and DOCX files are supported", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not extract text from file", nil)
		return
	}

	generated, err := h.Svc.FromResumeText(c.Request.Context(), text)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, generateResponse{Content: generated})
}

func (h *Handler) fail(c *gin.Context, err error) {
	var fieldErrs content.FieldErrors
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case errors.Is(err, llm.ErrNotConfigured):
		respond.Error(c, http.StatusServiceUnavailable, "llm_unavailable", "AI generation is not configured", nil)
	case errors.As(err, &fieldErrs):
		respond.Error(c, http.StatusBadGateway, "generation_failed", "the model returned unusable resume content", fieldErrs)
	default:
		respond.Error(c, http.StatusBadGateway, "generation_failed", "resume generation failed", nil)
	}
}

func splitSkills(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
