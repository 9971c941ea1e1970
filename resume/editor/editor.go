// Package editor maintains an in-progress resume draft between user input
// and the validated content structure. The draft tolerates invalid
// intermediate states; validation runs only on explicit Submit.
package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/haseeb-240/AiResume/resume/content"
)

// Editor holds a mutable draft of resume content. It owns its draft: values
// are deep-copied on the way in and out, so no caller shares state with a
// validated or stored structure.
type Editor struct {
	draft content.ResumeContent
	errs  content.FieldErrors
}

// New returns an editor with an empty draft.
func New() *Editor {
	return &Editor{}
}

// Load returns an editor seeded from existing content, e.g. when editing a
// stored record.
func Load(c content.ResumeContent) *Editor {
	return &Editor{draft: c.Clone()}
}

// Draft returns a copy of the current working draft, valid or not.
func (e *Editor) Draft() content.ResumeContent {
	return e.draft.Clone()
}

// Errors returns the field errors recorded by the last Submit, or nil.
func (e *Editor) Errors() content.FieldErrors {
	return e.errs
}

// SetPersonalDetails replaces the header fields. The profile picture is
// managed separately through SetProfilePicture so its size cap cannot be
// bypassed.
func (e *Editor) SetPersonalDetails(d content.PersonalDetails) {
	d.ProfilePicture = e.draft.PersonalDetails.ProfilePicture
	e.draft.PersonalDetails = d
}

// SetProfilePicture accepts an inline data:image URI whose decoded payload is
// within the 5MB cap. On any failure the previous value is left untouched.
func (e *Editor) SetProfilePicture(dataURI string) error {
	if dataURI == "" {
		e.draft.PersonalDetails.ProfilePicture = ""
		return nil
	}
	if _, err := ParseImageDataURI(dataURI); err != nil {
		return err
	}
	e.draft.PersonalDetails.ProfilePicture = dataURI
	return nil
}

// AddWorkExperience appends an entry to the end of the sequence.
func (e *Editor) AddWorkExperience(entry content.WorkExperienceEntry) {
	e.draft.WorkExperience = append(e.draft.WorkExperience, entry)
}

// RemoveWorkExperience removes the entry at index, preserving the relative
// order of the remaining entries.
func (e *Editor) RemoveWorkExperience(index int) error {
	out, err := removeAt(e.draft.WorkExperience, index)
	if err != nil {
		return err
	}
	e.draft.WorkExperience = out
	return nil
}

// AddEducation appends an entry to the end of the sequence.
func (e *Editor) AddEducation(entry content.EducationEntry) {
	e.draft.Education = append(e.draft.Education, entry)
}

// RemoveEducation removes the entry at index.
func (e *Editor) RemoveEducation(index int) error {
	out, err := removeAt(e.draft.Education, index)
	if err != nil {
		return err
	}
	e.draft.Education = out
	return nil
}

// AddSkill appends a skill token.
func (e *Editor) AddSkill(skill string) {
	e.draft.Skills = append(e.draft.Skills, skill)
}

// RemoveSkill removes the token at index.
func (e *Editor) RemoveSkill(index int) error {
	out, err := removeAt(e.draft.Skills, index)
	if err != nil {
		return err
	}
	e.draft.Skills = out
	return nil
}

// AddProject appends a project entry.
func (e *Editor) AddProject(entry content.ProjectEntry) {
	e.draft.Projects = append(e.draft.Projects, entry)
}

// RemoveProject removes the project at index.
func (e *Editor) RemoveProject(index int) error {
	out, err := removeAt(e.draft.Projects, index)
	if err != nil {
		return err
	}
	e.draft.Projects = out
	return nil
}

// Submit validates the draft. On success the completion callback receives a
// deep copy of the validated content and its error, if any, is returned. On
// validation failure the field errors are recorded on the editor and returned
// without invoking the callback, so the form can highlight every offending
// field from one attempt.
func (e *Editor) Submit(ctx context.Context, commit func(context.Context, content.ResumeContent) error) error {
	if commit == nil {
		return errors.New("editor: commit callback is required")
	}
	if errs := content.Validate(e.draft); errs != nil {
		e.errs = errs
		return errs
	}
	e.errs = nil
	return commit(ctx, e.draft.Clone())
}

func removeAt[T any](s []T, index int) ([]T, error) {
	if index < 0 || index >= len(s) {
		return nil, fmt.Errorf("index %d out of range", index)
	}
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:index]...)
	out = append(out, s[index+1:]...)
	return out, nil
}
