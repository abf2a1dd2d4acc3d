package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

type BudgetReport struct {
	TravelerName string
	Trip         *TripBudget
	GeneratedAt  time.Time
}

// BudgetReportPDF renders a trip budget as a one-page A4 report.
func BudgetReportPDF(r BudgetReport) ([]byte, error) {
	trip := r.Trip
	if trip == nil {
		return nil, fmt.Errorf("budget report has no trip")
	}
	if r.GeneratedAt.IsZero() {
		r.GeneratedAt = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "TravelMate", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Trip Budget Estimate", "", 1, "L", false, 0, "")

	pdf.SetY(35)

	// ── Disclaimer ───────────────────────────────────────────
	pdf.SetFillColor(255, 248, 225)
	pdf.SetDrawColor(212, 168, 67)
	pdf.SetTextColor(130, 90, 20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY()
	pdf.Rect(20, y, 170, 12, "FD")
	pdf.SetXY(23, y+2)
	pdf.MultiCell(164, 4,
		"Figures are estimates in USD based on typical local prices. Flights are round trip for the whole party.",
		"", "C", false)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Ln(6)

	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	// ── Trip Overview ─────────────────────────────────────────
	sectionHeader("Trip Overview")
	name := r.TravelerName
	if name == "" {
		name = "Guest Traveler"
	}
	row("Traveler", name)
	row("Destination", Title(trip.Destination))
	row("Duration", fmt.Sprintf("%d days", trip.Duration))
	row("Travelers", fmt.Sprintf("%d", trip.Travelers))
	row("Travel style", Title(trip.BudgetLevel))
	row("Generated", r.GeneratedAt.UTC().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	// ── Daily Costs ───────────────────────────────────────────
	sectionHeader("Daily Costs (whole party)")
	for _, c := range []struct {
		label string
		cost  CategoryCost
	}{
		{"Accommodation", trip.Accommodation},
		{"Food", trip.Food},
		{"Activities", trip.Activities},
		{"Transportation", trip.Transportation},
	} {
		row(c.label, fmt.Sprintf("$%d - $%d per day  (trip: $%d+)", c.cost.Min, c.cost.Max, c.cost.Total))
	}
	row("Daily total", fmtRange(trip.DailyCost))
	pdf.Ln(4)

	// ── Attractions ───────────────────────────────────────────
	if len(trip.Attractions) > 0 {
		sectionHeader("Suggested Attractions")
		for _, a := range trip.Attractions {
			price := "Free"
			if a.Cost > 0 {
				price = fmt.Sprintf("$%d per person", a.Cost)
			}
			row(a.Name, price)
		}
		pdf.Ln(4)
	}

	// ── Cost Summary ──────────────────────────────────────────
	sectionHeader("Cost Estimate")
	row("Flights", fmtRange(trip.Flights))
	pdf.SetFillColor(212, 168, 67)
	pdf.SetTextColor(13, 24, 37)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 9, "TOTAL ESTIMATE", "", 0, "L", true, 0, "")
	pdf.CellFormat(115, 9, fmtRange(trip.TotalCost), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)

	// ── Footer ────────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8, "Generated by TravelMate - prices subject to change", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func fmtRange(r Range) string {
	return fmt.Sprintf("$%d - $%d", r.Min, r.Max)
}
