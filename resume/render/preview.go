package render

import (
	"html"
	"strings"

	"github.com/haseeb-240/AiResume/resume/content"
)

// Template tags carried on a record. They restyle the rendered views only;
// content validation never looks at them.
const (
	TemplateProfessional = "professional"
	TemplateModern       = "modern"
	TemplateMinimal      = "minimal"
)

var templateAccents = map[string]string{
	TemplateProfessional: "#1F2937",
	TemplateModern:       "#2563EB",
	TemplateMinimal:      "#111111",
}

// Preview renders content as a single continuously scrolling HTML fragment.
// It is a pure function of its input: same content, same markup.
func Preview(c content.ResumeContent, template string) string {
	var b strings.Builder
	b.WriteString(`<article class="resume resume--` + cssTemplate(template) + `">` + "\n")
	for _, section := range Compose(c) {
		writeSectionHTML(&b, section)
	}
	b.WriteString("</article>\n")
	return b.String()
}

// PreviewPage wraps Preview in a standalone HTML document for direct serving.
func PreviewPage(c content.ResumeContent, template string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	b.WriteString(baseCSS(template))
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString(Preview(c, template))
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeSectionHTML(b *strings.Builder, section Section) {
	b.WriteString(`<section class="resume-section resume-section--` + string(section.Kind) + `">` + "\n")
	if section.Title != "" {
		b.WriteString("<h2>" + html.EscapeString(section.Title) + "</h2>\n")
	}
	for _, block := range section.Blocks {
		writeBlockHTML(b, block)
	}
	b.WriteString("</section>\n")
}

// writeBlockHTML emits the markup for one block. The paginated document's
// page HTML goes through the same writer, keeping the two renderings
// typographically identical.
func writeBlockHTML(b *strings.Builder, block Block) {
	switch block.Kind {
	case BlockImage:
		b.WriteString(`<img class="avatar" alt="Profile" src="` + html.EscapeString(block.Image) + `">` + "\n")
	case BlockName:
		b.WriteString("<h1>" + html.EscapeString(block.Text) + "</h1>\n")
	case BlockContact:
		b.WriteString(`<p class="contact">` + html.EscapeString(block.Text) + "</p>\n")
	case BlockParagraph:
		b.WriteString(`<p class="paragraph">` + html.EscapeString(block.Text) + "</p>\n")
	case BlockTokens:
		b.WriteString(`<ul class="tokens">` + "\n")
		for _, item := range block.Items {
			b.WriteString("<li>" + html.EscapeString(item) + "</li>\n")
		}
		b.WriteString("</ul>\n")
	case BlockEntry:
		b.WriteString(`<div class="entry">` + "\n")
		if block.Title != "" {
			b.WriteString("<h3>" + html.EscapeString(block.Title) + "</h3>\n")
		}
		if block.Meta != "" {
			b.WriteString(`<p class="meta">` + html.EscapeString(block.Meta) + "</p>\n")
		}
		if block.Dates != "" {
			b.WriteString(`<p class="dates">` + html.EscapeString(block.Dates) + "</p>\n")
		}
		if block.Body != "" {
			b.WriteString(`<p class="body">` + html.EscapeString(block.Body) + "</p>\n")
		}
		if len(block.Items) > 0 {
			b.WriteString(`<p class="technologies">Technologies: ` + html.EscapeString(strings.Join(block.Items, ", ")) + "</p>\n")
		}
		if block.Link != "" {
			b.WriteString(`<a class="project-link" href="` + html.EscapeString(block.Link) + `">View Project</a>` + "\n")
		}
		b.WriteString("</div>\n")
	}
}

func cssTemplate(template string) string {
	if _, ok := templateAccents[template]; ok {
		return template
	}
	return TemplateProfessional
}

func accentColor(template string) string {
	if color, ok := templateAccents[template]; ok {
		return color
	}
	return templateAccents[TemplateProfessional]
}

func baseCSS(template string) string {
	accent := accentColor(template)
	return `body { font-family: Helvetica, Arial, sans-serif; color: #374151; margin: 0; }
.resume { max-width: 52rem; margin: 0 auto; background: #fff; padding: 2rem; }
.resume h1 { font-size: 1.9rem; color: #111827; margin: 0 0 0.3rem; text-align: center; }
.resume h2 { font-size: 1.2rem; color: ` + accent + `; border-bottom: 1px solid #E5E7EB; padding-bottom: 0.3rem; }
.resume h3 { font-size: 1rem; color: #111827; margin: 0; }
.resume .avatar { width: 8rem; height: 8rem; border-radius: 50%; object-fit: cover; display: block; margin: 0 auto 1rem; }
.resume .contact { color: #6B7280; margin: 0.15rem 0; text-align: center; }
.resume .paragraph, .resume .body { white-space: pre-wrap; }
.resume .meta { color: #4B5563; margin: 0.1rem 0; }
.resume .dates { color: #6B7280; font-size: 0.85rem; margin: 0.1rem 0; }
.resume .tokens { list-style: none; padding: 0; margin: 0; }
.resume .tokens li { display: inline-block; background: #F3F4F6; border-radius: 999px; padding: 0.2rem 0.8rem; margin: 0 0.3rem 0.3rem 0; font-size: 0.85rem; }
.resume .technologies { color: #6B7280; font-size: 0.85rem; }
.resume .project-link { color: #2563EB; font-size: 0.85rem; }
.resume .entry { margin-bottom: 1rem; }
`
}
