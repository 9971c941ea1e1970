package render

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PageHTML renders a paginated document as one fixed-size div per page,
// reusing the preview's block markup so both views stay typographically
// consistent.
func PageHTML(doc Document, template string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	b.WriteString(baseCSS(template))
	b.WriteString(fmt.Sprintf(`@page { size: A4; margin: 0; }
.page { width: %.0fpt; height: %.0fpt; padding: %.0fpt; box-sizing: border-box; page-break-after: always; overflow: hidden; }
`, PageWidthPt, PageHeightPt, PageMarginPt))
	b.WriteString("</style>\n</head>\n<body>\n")
	for _, pg := range doc.Pages {
		b.WriteString(`<div class="page"><article class="resume resume--` + cssTemplate(template) + `">` + "\n")
		for _, fragment := range pg.Fragments {
			writeSectionHTML(&b, Section{Kind: fragment.Section, Title: fragment.Heading, Blocks: fragment.Blocks})
		}
		b.WriteString("</article></div>\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// ExportPDF prints a paginated document to PDF bytes in headless Chromium.
// Chromium does the final typesetting against the same A4 geometry Paginate
// used. Requires Chrome/Chromium on the host.
func ExportPDF(ctx context.Context, doc Document, template string) ([]byte, error) {
	html := PageHTML(doc, template)
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPreferCSSPageSize(true).
				WithPrintBackground(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("pdf export failed: %w", err)
	}
	return pdf, nil
}
