package render

import (
	"strings"

	"github.com/haseeb-240/AiResume/resume/content"
)

// SectionKind identifies a resume section.
type SectionKind string

const (
	SectionHeader     SectionKind = "header"
	SectionSummary    SectionKind = "summary"
	SectionExperience SectionKind = "experience"
	SectionSkills     SectionKind = "skills"
	SectionEducation  SectionKind = "education"
	SectionProjects   SectionKind = "projects"
)

// BlockKind identifies the shape of a rendered block.
type BlockKind string

const (
	BlockImage     BlockKind = "image"
	BlockName      BlockKind = "name"
	BlockContact   BlockKind = "contact"
	BlockParagraph BlockKind = "paragraph"
	BlockEntry     BlockKind = "entry"
	BlockTokens    BlockKind = "tokens"
)

// Block is one visual unit inside a section. Which fields are set depends on
// Kind: entries carry Title/Meta/Dates/Body, token lists carry Items, the
// header image carries Image.
type Block struct {
	Kind  BlockKind
	Text  string
	Title string
	Meta  string
	Dates string
	Body  string
	Items []string
	Link  string
	Image string
}

// Section is an ordered group of blocks under an optional heading. The header
// section has no heading of its own.
type Section struct {
	Kind   SectionKind
	Title  string
	Blocks []Block
}

// Compose maps validated content to the ordered list of visible sections.
// This is the single place that decides which sections render and in what
// order; the HTML preview and the paginated document both consume it, so the
// two views cannot diverge. A section backed by an empty field or sequence is
// omitted entirely, heading included. Sequences are never reordered.
func Compose(c content.ResumeContent) []Section {
	sections := make([]Section, 0, 6)
	sections = append(sections, headerSection(c.PersonalDetails))

	if strings.TrimSpace(c.PersonalDetails.Summary) != "" {
		sections = append(sections, Section{
			Kind:   SectionSummary,
			Title:  "Professional Summary",
			Blocks: []Block{{Kind: BlockParagraph, Text: c.PersonalDetails.Summary}},
		})
	}

	if len(c.WorkExperience) > 0 {
		blocks := make([]Block, 0, len(c.WorkExperience))
		for _, exp := range c.WorkExperience {
			blocks = append(blocks, Block{
				Kind:  BlockEntry,
				Title: exp.Title,
				Meta:  joinMeta(exp.Company, exp.Location),
				Dates: exp.StartDate + " - " + exp.EndDate,
				Body:  exp.Description,
			})
		}
		sections = append(sections, Section{Kind: SectionExperience, Title: "Experience", Blocks: blocks})
	}

	if len(c.Skills) > 0 {
		items := make([]string, len(c.Skills))
		copy(items, c.Skills)
		sections = append(sections, Section{
			Kind:   SectionSkills,
			Title:  "Skills",
			Blocks: []Block{{Kind: BlockTokens, Items: items}},
		})
	}

	if len(c.Education) > 0 {
		blocks := make([]Block, 0, len(c.Education))
		for _, edu := range c.Education {
			blocks = append(blocks, Block{
				Kind:  BlockEntry,
				Title: edu.Degree,
				Meta:  joinMeta(edu.Institution, edu.Location),
				Dates: edu.GraduationYear,
			})
		}
		sections = append(sections, Section{Kind: SectionEducation, Title: "Education", Blocks: blocks})
	}

	if len(c.Projects) > 0 {
		blocks := make([]Block, 0, len(c.Projects))
		for _, project := range c.Projects {
			items := make([]string, len(project.Technologies))
			copy(items, project.Technologies)
			blocks = append(blocks, Block{
				Kind:  BlockEntry,
				Title: project.Title,
				Body:  project.Description,
				Items: items,
				Link:  project.Link,
			})
		}
		sections = append(sections, Section{Kind: SectionProjects, Title: "Projects", Blocks: blocks})
	}

	return sections
}

func headerSection(d content.PersonalDetails) Section {
	blocks := make([]Block, 0, 6)
	if d.ProfilePicture != "" {
		blocks = append(blocks, Block{Kind: BlockImage, Image: d.ProfilePicture})
	}
	blocks = append(blocks,
		Block{Kind: BlockName, Text: d.FullName},
		Block{Kind: BlockContact, Text: d.Email},
		Block{Kind: BlockContact, Text: d.Phone},
		Block{Kind: BlockContact, Text: d.Location},
	)
	if d.Linkedin != "" {
		blocks = append(blocks, Block{Kind: BlockContact, Text: d.Linkedin})
	}
	return Section{Kind: SectionHeader, Blocks: blocks}
}

func joinMeta(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " • ")
}
