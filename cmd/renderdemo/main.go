package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/haseeb-240/AiResume/resume/content"
	"github.com/haseeb-240/AiResume/resume/render"
)

// renderdemo writes the preview and paginated renderings of a sample
// resume to disk so template changes can be eyeballed in a browser.
func main() {
	outDir := flag.String("out", "./out", "output directory for rendered HTML")
	template := flag.String("template", "modern", "template name (professional, modern, minimal)")
	flag.Parse()

	c := sampleContent()
	if errs := content.Validate(c); len(errs) > 0 {
		fmt.Fprintf(os.Stderr, "sample content invalid: %v\n", errs)
		os.Exit(1)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir failed: %v\n", err)
		os.Exit(1)
	}

	preview := render.PreviewPage(c, *template)
	previewPath := filepath.Join(*outDir, "preview.html")
	if err := os.WriteFile(previewPath, []byte(preview), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	doc := render.Paginate(c)
	paged := render.PageHTML(doc, *template)
	pagedPath := filepath.Join(*outDir, "document.html")
	if err := os.WriteFile(pagedPath, []byte(paged), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("OK: wrote %s and %s (%d page(s))\n", previewPath, pagedPath, len(doc.Pages))
}

func sampleContent() content.ResumeContent {
	return content.ResumeContent{
		PersonalDetails: content.PersonalDetails{
			FullName: "Jordan Lee",
			Email:    "jordan.lee@example.com",
			Phone:    "+1-555-0102",
			Location: "Austin, TX",
			Linkedin: "https://www.linkedin.com/in/jordanlee",
			Summary:  "Backend engineer with 8+ years of experience building resilient APIs and data services.",
		},
		WorkExperience: []content.WorkExperienceEntry{
			{
				Title:       "Senior Backend Engineer",
				Company:     "Acme Logistics",
				Location:    "Austin, TX",
				StartDate:   "2021-04",
				EndDate:     "Present",
				Description: "Designed a routing service that reduced shipment latency by 18%. Implemented distributed tracing to cut incident triage time by 35%.",
			},
			{
				Title:       "Backend Engineer",
				Company:     "Blue Harbor Systems",
				Location:    "Seattle, WA",
				StartDate:   "2018-01",
				EndDate:     "2021-03",
				Description: "Built event-driven ingestion pipelines for compliance data feeds.",
			},
		},
		Education: []content.EducationEntry{
			{
				Degree:         "B.S. Computer Science",
				Institution:    "University of Texas at Austin",
				Location:       "Austin, TX",
				GraduationYear: "2017",
			},
		},
		Skills: []string{"Go", "PostgreSQL", "Redis", "Docker", "Kubernetes", "Terraform"},
		Projects: []content.ProjectEntry{
			{
				Title:        "tracequery",
				Description:  "Open source CLI for querying distributed traces from the terminal.",
				Technologies: []string{"Go", "OpenTelemetry"},
				Link:         "https://github.com/jordanlee/tracequery",
			},
		},
	}
}
