package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/planflow/planflow/internal/errors"
	"github.com/planflow/planflow/internal/plan"
)

const (
	pageMargin   = 15.0
	contentWidth = 180.0 // A4 width minus margins
	lineHeight   = 6.0
)

// RenderPDF renders the plan as a PDF document.
func RenderPDF(p *plan.ProjectPlan, now time.Time) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pageMargin, pageMargin, pageMargin)
	doc.SetAutoPageBreak(true, pageMargin)
	doc.AddPage()

	writeTitle(doc, p.ProjectName, now)

	writeHeading(doc, "Executive Summary")
	doc.SetFont("Helvetica", "", 10)
	doc.MultiCell(contentWidth, lineHeight, p.ExecutiveSummary, "", "L", false)

	writeHeading(doc, "Key Milestones")
	writeBullets(doc, p.KeyMilestones)

	writeHeading(doc, "Technology Stack")
	writeStackTable(doc, p.TechnologyStack)

	writeHeading(doc, "Resource Suggestions")
	writeBullets(doc, p.ResourceSuggestions)

	writeHeading(doc, "Project Schedule")
	writeScheduleTable(doc, p.Schedule.Tasks)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRenderPDF, "writing PDF output", err)
	}
	return buf.Bytes(), nil
}

func writeTitle(doc *fpdf.Fpdf, name string, now time.Time) {
	doc.SetFont("Helvetica", "B", 18)
	doc.MultiCell(contentWidth, 9, name, "", "L", false)
	doc.SetFont("Helvetica", "I", 9)
	doc.SetTextColor(110, 110, 110)
	doc.CellFormat(contentWidth, 5, "Generated "+now.Format("January 2, 2006"), "", 1, "L", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.Ln(3)
}

func writeHeading(doc *fpdf.Fpdf, title string) {
	doc.Ln(4)
	doc.SetFont("Helvetica", "B", 13)
	doc.SetTextColor(67, 97, 238)
	doc.CellFormat(contentWidth, 8, title, "", 1, "L", false, 0, "")
	doc.SetTextColor(0, 0, 0)
}

func writeBullets(doc *fpdf.Fpdf, items []string) {
	doc.SetFont("Helvetica", "", 10)
	for _, item := range items {
		doc.MultiCell(contentWidth, lineHeight, "- "+item, "", "L", false)
	}
}

func writeStackTable(doc *fpdf.Fpdf, entries []plan.TechnologyStackEntry) {
	widths := []float64{40, 45, 95}
	writeTableHeader(doc, widths, []string{"Component", "Technology", "Rationale"})
	doc.SetFont("Helvetica", "", 9)
	for _, e := range entries {
		doc.CellFormat(widths[0], lineHeight, e.Component, "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[1], lineHeight, e.Technology, "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[2], lineHeight, e.Rationale, "1", 1, "L", false, 0, "")
	}
}

func writeScheduleTable(doc *fpdf.Fpdf, tasks []plan.ScheduleTask) {
	widths := []float64{10, 70, 28, 22, 20, 30}
	writeTableHeader(doc, widths, []string{"#", "Task", "Start Date", "Duration", "Progress", "Owner"})
	doc.SetFont("Helvetica", "", 9)
	for _, task := range tasks {
		doc.CellFormat(widths[0], lineHeight, fmt.Sprintf("%d", task.ID), "1", 0, "C", false, 0, "")
		doc.CellFormat(widths[1], lineHeight, task.Text, "1", 0, "L", false, 0, "")
		doc.CellFormat(widths[2], lineHeight, task.StartDate, "1", 0, "C", false, 0, "")
		doc.CellFormat(widths[3], lineHeight, fmt.Sprintf("%d d", task.Duration), "1", 0, "C", false, 0, "")
		doc.CellFormat(widths[4], lineHeight, fmt.Sprintf("%d%%", int(task.Progress*100)), "1", 0, "C", false, 0, "")
		doc.CellFormat(widths[5], lineHeight, task.Owner, "1", 1, "L", false, 0, "")
	}
}

func writeTableHeader(doc *fpdf.Fpdf, widths []float64, titles []string) {
	doc.SetFont("Helvetica", "B", 9)
	doc.SetFillColor(238, 240, 251)
	last := len(titles) - 1
	for i, title := range titles {
		lineBreak := 0
		if i == last {
			lineBreak = 1
		}
		doc.CellFormat(widths[i], lineHeight+1, title, "1", lineBreak, "L", true, 0, "")
	}
}
