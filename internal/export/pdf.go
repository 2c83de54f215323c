package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-pdf/fpdf"

	"github.com/matchboardapp/matchboard-server/internal/domain"
)

// PDFFilename returns the dated filename for a PDF roster,
// e.g. "matchboard-roster-2026-08-30.pdf".
func PDFFilename(now time.Time) string {
	return fmt.Sprintf("matchboard-roster-%s.pdf", now.Format("2006-01-02"))
}

// Column widths in mm, landscape A4 (277mm printable at 10mm margins).
var pdfColumns = []struct {
	title string
	width float64
}{
	{"Name", 45},
	{"Age", 12},
	{"Job", 40},
	{"City", 32},
	{"Status", 25},
	{"Tags", 45},
	{"Notes", 78},
}

// PDF renders the candidate roster as a paginated table. Long tables
// repeat the header row on every page.
func PDF(data domain.AppData, now time.Time) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Matchboard Roster", false)
	pdf.SetAutoPageBreak(true, 15)

	drawHeader := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range pdfColumns {
			pdf.CellFormat(col.width, 7, col.title, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, "Matchboard Roster", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, fmt.Sprintf("%d candidates, generated %s", len(data.Candidates), now.Format("2006-01-02")), "", 1, "L", false, 0, "")
	pdf.Ln(2)
	drawHeader()

	_, pageHeight := pdf.GetPageSize()
	for _, c := range data.Candidates {
		// Repeat the header after an automatic page break would fire.
		if pdf.GetY() > pageHeight-25 {
			pdf.AddPage()
			drawHeader()
		}

		labels := make([]string, 0, len(c.Tags))
		for _, t := range c.Tags {
			labels = append(labels, t.Label)
		}

		cells := []string{
			c.Name,
			fmt.Sprintf("%d", c.Age),
			c.Job,
			c.City,
			string(c.Status),
			strings.Join(labels, ", "),
			c.NotesSummary,
		}
		for i, col := range pdfColumns {
			pdf.CellFormat(col.width, 6, truncate(pdf, cells[i], col.width), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// truncate shortens a cell value to fit its column width. Trimming is
// rune-wise so multi-byte names never lose half a character.
func truncate(pdf *fpdf.Fpdf, s string, width float64) string {
	const padding = 2.0
	if pdf.GetStringWidth(s) <= width-padding {
		return s
	}
	ellipsis := "..."
	for len(s) > 0 && pdf.GetStringWidth(s+ellipsis) > width-padding {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
	}
	return s + ellipsis
}
