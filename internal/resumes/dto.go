package resumes

import (
	"time"

	"github.com/haseeb-240/AiResume/resume/content"
)

type createRequest struct {
	Title    string                `json:"title"`
	Template string                `json:"template"`
	Content  content.ResumeContent `json:"content"`
}

type updateRequest struct {
	Title    *string                `json:"title"`
	Template *string                `json:"template"`
	Content  *content.ResumeContent `json:"content"`
}

type recordResponse struct {
	ID        string                `json:"id"`
	Title     string                `json:"title"`
	Template  string                `json:"template"`
	Content   content.ResumeContent `json:"content"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

func toResponse(rec Record) recordResponse {
	return recordResponse{
		ID:        rec.ID,
		Title:     rec.Title,
		Template:  rec.Template,
		Content:   rec.Content,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func toResponses(records []Record) []recordResponse {
	out := make([]recordResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toResponse(rec))
	}
	return out
}
