package services

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"dentalclinic/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ExportService renders queried pages as PDF reports.
type ExportService struct {
	RequestID string
	Now       func() time.Time
}

const (
	pdfMargin    = 10.0
	pdfRowHeight = 7.0
)

// RenderPDF lays t out as a landscape A4 table. It returns the document and a
// download file name.
func (s ExportService) RenderPDF(t Table) ([]byte, string, error) {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(t.Title), false)
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin+pdfRowHeight)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pdfMargin - 2)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 5, tr(footerText(t)), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(safe(t.Title, t.Screen)))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, tr("Gerado em "+utils.FormatDateTime(now)+describeSpecLine(t)))
	pdf.Ln(9)

	if len(t.Headers) > 0 {
		pageW, _ := pdf.GetPageSize()
		colW := (pageW - 2*pdfMargin) / float64(len(t.Headers))

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 236, 245)
		for _, h := range t.Headers {
			pdf.CellFormat(colW, pdfRowHeight, fitText(pdf, tr, h, colW), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 8)
		for _, row := range t.Rows {
			for _, cell := range row {
				pdf.CellFormat(colW, pdfRowHeight, fitText(pdf, tr, cell, colW), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		if len(t.Rows) == 0 {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(0, pdfRowHeight, tr("Nenhum registro encontrado."), "1", 0, "C", false, 0, "")
			pdf.Ln(-1)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render pdf: %w", err)
	}

	utils.LogEvent(s.RequestID, "export", "render_pdf", fmt.Sprintf("screen=%s rows=%d", t.Screen, len(t.Rows)))
	filename := fmt.Sprintf("%s_%s_p%d.pdf", utils.SafeFilenamePart(t.Screen), now.Format("20060102"), t.Meta.CurrentPage)
	return buf.Bytes(), filename, nil
}

func footerText(t Table) string {
	return fmt.Sprintf("Página %d de %d - %d registros", t.Meta.CurrentPage, t.Meta.LastPage, t.Meta.Total)
}

func describeSpecLine(t Table) string {
	var parts []string
	if t.Spec.SearchTerm != "" {
		parts = append(parts, fmt.Sprintf("busca %q", t.Spec.SearchTerm))
	}
	filters := t.Spec.ActiveFilters()
	for _, k := range slices.Sorted(maps.Keys(filters)) {
		parts = append(parts, k+"="+filters[k])
	}
	if t.Spec.SortKey != "" {
		parts = append(parts, "ordem "+t.Spec.SortKey+" "+string(t.Spec.SortOrder))
	}
	if len(parts) == 0 {
		return ""
	}
	return " | " + strings.Join(parts, ", ")
}

// fitText translates s with tr and shortens it until it fits a cell of width
// w. The result is already translated.
func fitText(pdf *gofpdf.Fpdf, tr func(string) string, s string, w float64) string {
	const pad = 2.0
	if out := tr(s); pdf.GetStringWidth(out) <= w-pad {
		return out
	}
	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(tr(string(runes)+"...")) > w-pad {
		runes = runes[:len(runes)-1]
	}
	return tr(string(runes) + "...")
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
