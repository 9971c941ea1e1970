package render

import (
	"math"
	"strings"

	"github.com/haseeb-240/AiResume/resume/content"
)

// Fixed page geometry: ISO A4 in points with uniform margins. Not
// configurable; both the flow model below and the exported PDF use it.
const (
	PageWidthPt  = 595.0
	PageHeightPt = 842.0
	PageMarginPt = 30.0

	bodyHeightPt = PageHeightPt - 2*PageMarginPt

	lineHeightPt  = 14.0
	nameHeightPt  = 30.0
	imageHeightPt = 112.0
	headingPt     = 26.0
	blockGapPt    = 8.0
	charsPerLine  = 90
)

// Document is the paginated rendering of resume content.
type Document struct {
	Pages []Page
}

// Page holds the fragments placed on one fixed-size page.
type Page struct {
	Fragments []Fragment
}

// Fragment is the part of a section that landed on a single page. Heading is
// set only on the fragment that opens the section; continuations carry an
// empty heading so a section title never repeats.
type Fragment struct {
	Section SectionKind
	Heading string
	Blocks  []Block
}

// Paginate lays validated content out onto A4 pages. It consumes the same
// Compose output as the HTML preview, so section visibility and ordering are
// identical across the two renderings. Blocks flow onto the next page when
// the current one is full; a paragraph taller than a whole page is split by
// line so nothing is ever dropped or pushed off-page.
func Paginate(c content.ResumeContent) Document {
	doc := Document{Pages: []Page{{}}}
	remaining := bodyHeightPt

	page := func() *Page { return &doc.Pages[len(doc.Pages)-1] }
	breakPage := func() {
		doc.Pages = append(doc.Pages, Page{})
		remaining = bodyHeightPt
	}
	place := func(section Section, opens bool, block Block, height float64) {
		p := page()
		n := len(p.Fragments)
		if n > 0 && p.Fragments[n-1].Section == section.Kind {
			p.Fragments[n-1].Blocks = append(p.Fragments[n-1].Blocks, block)
		} else {
			heading := ""
			if opens {
				heading = section.Title
			}
			p.Fragments = append(p.Fragments, Fragment{Section: section.Kind, Heading: heading, Blocks: []Block{block}})
		}
		remaining -= height
	}

	for _, section := range Compose(c) {
		opened := false
		for _, block := range section.Blocks {
			headroom := 0.0
			if !opened && section.Title != "" {
				headroom = headingPt
			}
			for _, chunk := range splitBlock(block, bodyHeightPt-headingPt) {
				h := blockHeight(chunk)
				if h+headroom > remaining && remaining < bodyHeightPt {
					breakPage()
				}
				place(section, !opened, chunk, h+headroom)
				opened = true
				headroom = 0
			}
		}
	}
	return doc
}

// splitBlock cuts a block into chunks that each fit within maxHeight.
// Paragraph-like bodies split by wrapped line and token lists by item, so no
// chunk is ever taller than a page.
func splitBlock(block Block, maxHeight float64) []Block {
	if blockHeight(block) <= maxHeight {
		return []Block{block}
	}
	switch block.Kind {
	case BlockTokens:
		var chunks []Block
		for _, group := range splitTokenItems(block.Items, maxHeight) {
			chunk := block
			chunk.Items = group
			chunks = append(chunks, chunk)
		}
		return chunks
	case BlockEntry:
		return splitEntry(block, maxHeight)
	case BlockParagraph:
		return splitByLines(block, maxHeight)
	}
	return []Block{block}
}

// splitEntry flows an oversized entry's body by line, then its token items,
// so an entry with a huge technologies list continues onto later pages
// instead of clipping at the page edge.
func splitEntry(block Block, maxHeight float64) []Block {
	items := block.Items
	head := block
	head.Items = nil

	chunks := []Block{head}
	if blockHeight(head) > maxHeight {
		chunks = splitByLines(head, maxHeight)
	}
	if len(items) == 0 {
		return chunks
	}

	last := chunks[len(chunks)-1]
	last.Items = items
	if blockHeight(last) <= maxHeight {
		chunks[len(chunks)-1] = last
		return chunks
	}
	for _, group := range splitTokenItems(items, maxHeight) {
		chunks = append(chunks, Block{Kind: BlockEntry, Items: group})
	}
	return chunks
}

// splitByLines chunks a paragraph or entry body by wrapped line.
func splitByLines(block Block, maxHeight float64) []Block {
	text := block.Text
	isEntry := block.Kind == BlockEntry
	if isEntry {
		text = block.Body
	}
	lines := wrapText(text, charsPerLine)

	fixed := blockHeight(block) - float64(len(lines))*lineHeightPt
	linesPerChunk := int((maxHeight - fixed) / lineHeightPt)
	if linesPerChunk < 1 {
		linesPerChunk = 1
	}

	var chunks []Block
	for start := 0; start < len(lines); start += linesPerChunk {
		end := start + linesPerChunk
		if end > len(lines) {
			end = len(lines)
		}
		chunk := block
		joined := strings.Join(lines[start:end], "\n")
		if isEntry {
			chunk.Body = joined
			if start > 0 {
				// continuation chunks repeat neither the role line nor dates
				chunk.Title = ""
				chunk.Meta = ""
				chunk.Dates = ""
				chunk.Link = ""
			}
		} else {
			chunk.Text = joined
		}
		chunks = append(chunks, chunk)
		fixed = 0
	}
	return chunks
}

// splitTokenItems groups items so each group's wrapped lines fit within
// maxHeight. Items never split internally; one that alone wraps past the
// limit gets a group of its own.
func splitTokenItems(items []string, maxHeight float64) [][]string {
	maxLines := int((maxHeight - blockGapPt) / lineHeightPt)
	if maxLines < 1 {
		maxLines = 1
	}

	var groups [][]string
	start := 0
	chars := 0
	for i, item := range items {
		chars += len(item) + 2
		if int(math.Ceil(float64(chars)/charsPerLine)) > maxLines && i > start {
			groups = append(groups, items[start:i])
			start = i
			chars = len(item) + 2
		}
	}
	if start < len(items) {
		groups = append(groups, items[start:])
	}
	return groups
}

func blockHeight(block Block) float64 {
	switch block.Kind {
	case BlockImage:
		return imageHeightPt
	case BlockName:
		return nameHeightPt
	case BlockContact:
		return lineHeightPt
	case BlockParagraph:
		return float64(len(wrapText(block.Text, charsPerLine)))*lineHeightPt + blockGapPt
	case BlockTokens:
		return tokenLines(block.Items)*lineHeightPt + blockGapPt
	case BlockEntry:
		h := blockGapPt
		if block.Title != "" {
			h += lineHeightPt
		}
		if block.Meta != "" {
			h += lineHeightPt
		}
		if block.Dates != "" {
			h += lineHeightPt
		}
		if block.Body != "" {
			h += float64(len(wrapText(block.Body, charsPerLine))) * lineHeightPt
		}
		if len(block.Items) > 0 {
			h += tokenLines(block.Items) * lineHeightPt
		}
		if block.Link != "" {
			h += lineHeightPt
		}
		return h
	}
	return lineHeightPt
}

func tokenLines(items []string) float64 {
	total := 0
	for _, item := range items {
		total += len(item) + 2
	}
	return math.Max(1, math.Ceil(float64(total)/charsPerLine))
}

// wrapText breaks text into display lines of at most width characters,
// honoring embedded newlines. Character-count wrapping is an estimate, the
// same one the overflow checks use; the exporter's layout engine does the
// exact typesetting.
func wrapText(text string, width int) []string {
	var lines []string
	for _, raw := range strings.Split(text, "\n") {
		words := strings.Fields(raw)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := words[0]
		for _, word := range words[1:] {
			if len(current)+1+len(word) > width {
				lines = append(lines, current)
				current = word
				continue
			}
			current += " " + word
		}
		lines = append(lines, current)
	}
	return lines
}
