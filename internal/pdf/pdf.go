// Package pdf renders a stored travel plan as a downloadable PDF itinerary.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"travel-planner-api/internal/models"
)

// RenderPlan generates a PDF for the plan and returns raw bytes (no
// filesystem involved).
func RenderPlan(plan *models.StoredPlan) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "AI Travel Planner", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	subtitle := "Personalized Travel Itinerary"
	if !plan.Plan.AIGenerated {
		subtitle = "Sample Travel Itinerary"
	}
	pdf.CellFormat(170, 6, subtitle, "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Section Helper ───────────────────────────────────────
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

	bullet := func(text string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.MultiCell(170, 5, "- "+text, "", "L", false)
	}

	// ── Trip Overview ─────────────────────────────────────────
	sectionHeader("Trip Overview")
	row("Destination", fmt.Sprintf("%s, %s", plan.Plan.Destination.Name, plan.Plan.Destination.Country))
	row("Requested", plan.UserInput.Destinations)
	row("Travelers", fmt.Sprintf("%d", plan.UserInput.Travelers))
	row("Budget", fmt.Sprintf("$%.0f", plan.UserInput.Budget))
	row("Best time to visit", plan.Plan.BestTimeToVisit)
	row("Generated", plan.CreatedAt.Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	// ── Itinerary ─────────────────────────────────────────────
	if len(plan.Plan.Itinerary) > 0 {
		sectionHeader("Itinerary")
		for _, day := range plan.Plan.Itinerary {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.SetTextColor(20, 20, 20)
			pdf.CellFormat(170, 7, fmt.Sprintf("Day %d: %s ($%.0f)", day.Day, day.Title, day.EstimatedCost), "", 1, "L", false, 0, "")
			for _, act := range day.Activities {
				bullet(act)
			}
			pdf.Ln(2)
		}
	}

	// ── Accommodation & Transportation ───────────────────────
	if plan.Plan.Accommodation != nil {
		sectionHeader("Accommodation")
		row("Type", plan.Plan.Accommodation.Type)
		row("Per night", fmt.Sprintf("$%.0f", plan.Plan.Accommodation.EstimatedCostPerNight))
		pdf.Ln(4)
	}
	if plan.Plan.Transportation != nil {
		sectionHeader("Transportation")
		row("Type", plan.Plan.Transportation.Type)
		row("Estimate", fmt.Sprintf("$%.0f", plan.Plan.Transportation.EstimatedCost))
		pdf.Ln(4)
	}

	// ── Cost Summary ──────────────────────────────────────────
	sectionHeader("Cost Estimate")
	bd := plan.Plan.BudgetBreakdown
	row("Accommodation", fmt.Sprintf("$%.0f", bd.Accommodation))
	row("Transportation", fmt.Sprintf("$%.0f", bd.Transportation))
	row("Food", fmt.Sprintf("$%.0f", bd.Food))
	row("Activities", fmt.Sprintf("$%.0f", bd.Activities))
	row("Miscellaneous", fmt.Sprintf("$%.0f", bd.Miscellaneous))

	pdf.SetFillColor(212, 168, 67)
	pdf.SetTextColor(13, 24, 37)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(55, 9, "TOTAL ESTIMATE", "", 0, "L", true, 0, "")
	pdf.CellFormat(115, 9, fmt.Sprintf("$%.0f", plan.Plan.TotalEstimatedCost), "", 1, "L", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(4)

	// ── Tips ──────────────────────────────────────────────────
	if len(plan.Plan.Tips) > 0 {
		sectionHeader("Tips")
		for _, tip := range plan.Plan.Tips {
			bullet(tip)
		}
		pdf.Ln(2)
	}

	// ── Raw AI text (degraded plans only) ─────────────────────
	if plan.Plan.RawAIResponse != "" {
		sectionHeader("AI Recommendations")
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.MultiCell(170, 5, plan.Plan.RawAIResponse, "", "L", false)
		pdf.Ln(4)
	}

	// ── Footer ────────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Generated by AI Travel Planner - Estimates only, verify prices before booking",
		"", 0, "C", false, 0, "")

	// ── Write to buffer ───────────────────────────────────────
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}
