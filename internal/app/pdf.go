package app

import (
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// WriteSummaryPDF renders a result as a one-page PDF: title, source link,
// optional byline, then the summary lines. Core fonts are cp1252, so text is
// translated from UTF-8; bullets and dashes survive, other symbols may not.
func WriteSummaryPDF(res Result, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(res.Title), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.MultiCell(0, 7, tr(res.Title), "", "L", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 9)
	if u := res.Article.URL; u != "" {
		pdf.SetTextColor(0, 0, 200)
		pdf.WriteLinkString(5, u, u)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(5)
	}
	if meta := byline(res.Article.Author, res.Article.SiteName, res.Article.PublishDate); meta != "" {
		pdf.Write(5, tr(meta))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	for _, line := range strings.Split(res.Summary, "\n") {
		s := strings.TrimSpace(line)
		if s == "" {
			pdf.Ln(3)
			continue
		}
		if strings.HasPrefix(s, "—") {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.MultiCell(0, 5, tr(s), "", "L", false)
			pdf.SetFont("Helvetica", "", 11)
			continue
		}
		pdf.MultiCell(0, 6, tr(s), "", "L", false)
		pdf.Ln(1)
	}

	return pdf.OutputFileAndClose(outPath)
}

func byline(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " · ")
}
