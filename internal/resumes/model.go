package resumes

import (
	"time"

	"github.com/haseeb-240/AiResume/resume/content"
	"github.com/haseeb-240/AiResume/resume/render"
)

// Record is a stored resume: content plus title, template tag, ownership and
// timestamps. ID, OwnerID and CreatedAt are set at creation and never change.
type Record struct {
	ID        string
	OwnerID   string
	Title     string
	Template  string
	Content   content.ResumeContent
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Patch carries the mutable fields of a record. Nil fields are not touched
// by an update.
type Patch struct {
	Title    *string
	Template *string
	Content  *content.ResumeContent
}

// ValidTemplate reports whether t is one of the supported template tags.
func ValidTemplate(t string) bool {
	switch t {
	case render.TemplateProfessional, render.TemplateModern, render.TemplateMinimal:
		return true
	}
	return false
}

// BelongsTo is the single ownership predicate applied before any record is
// returned or mutated on behalf of a caller.
func BelongsTo(r Record, ownerID string) bool {
	return ownerID != "" && r.OwnerID == ownerID
}

func (r Record) clone() Record {
	out := r
	out.Content = r.Content.Clone()
	return out
}
