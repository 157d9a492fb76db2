// Package planner produces travel plans. It prefers the AI adapter when one
// is configured and silently falls back to a deterministic catalog-backed
// template on any AI failure; the fallback is logged but never surfaced to
// the caller as an error.
package planner

import (
	"context"
	"log"
	"strings"

	"travel-planner-api/internal/catalog"
	"travel-planner-api/internal/models"
)

// Generator is the AI adapter contract the planner depends on.
type Generator interface {
	GeneratePlan(ctx context.Context, req models.TravelRequest) (*models.TravelPlan, error)
}

// Per-traveler daily cost bases for the deterministic template.
const (
	accommodationBase = 80
	foodBase          = 50
	activitiesBase    = 40

	// transportCap limits the transportation estimate regardless of budget.
	transportCap = 500
)

// Planner orchestrates plan generation. AI may be nil when no key is
// configured, which routes every request through the deterministic path.
type Planner struct {
	AI Generator
}

func New(ai Generator) *Planner {
	return &Planner{AI: ai}
}

// Generate builds a plan for the request. It never fails: AI errors of any
// kind (unconfigured, network, unparseable) degrade to the deterministic
// synthesizer.
func (p *Planner) Generate(ctx context.Context, req models.TravelRequest) *models.TravelPlan {
	if p.AI != nil {
		plan, err := p.AI.GeneratePlan(ctx, req)
		if err == nil {
			return plan
		}
		log.Printf("AI plan generation failed, using deterministic fallback: %v", err)
	}
	return p.synthesize(req)
}

// synthesize emits the fixed three-day template over the catalog record for
// the primary destination (the first comma segment of the input).
func (p *Planner) synthesize(req models.TravelRequest) *models.TravelPlan {
	primary := strings.TrimSpace(strings.Split(req.Destinations, ",")[0])
	rec := catalog.Lookup(primary)

	travelers := float64(req.Travelers)
	baseAccommodation := accommodationBase * travelers
	baseFood := foodBase * travelers
	baseActivities := activitiesBase * travelers

	// Catalog rows guarantee at least four places; the default record has
	// exactly four. The fallback to Places[0] is kept for safety.
	dayThreePlace := rec.Places[0]
	if len(rec.Places) > 3 {
		dayThreePlace = rec.Places[3]
	}

	itinerary := []models.DayPlan{
		{
			Day:   1,
			Title: "Arrival in " + rec.MainCity,
			Activities: []string{
				"Airport/Railway station pickup",
				"Hotel check-in",
				"Visit " + rec.Places[0],
				"Local cuisine dinner",
			},
			EstimatedCost: baseFood + 20,
		},
		{
			Day:   2,
			Title: "Explore " + rec.Places[1],
			Activities: []string{
				"Early morning visit to " + rec.Places[1],
				"Explore " + rec.Places[2],
				"Local market shopping",
				"Try " + rec.Cuisine[0],
			},
			EstimatedCost: baseActivities + baseFood,
		},
		{
			Day:   3,
			Title: "Cultural Experience at " + dayThreePlace,
			Activities: []string{
				"Visit " + dayThreePlace,
				"Experience " + rec.Culture[0],
				"Enjoy " + rec.Cuisine[1],
				"Photography and relaxation",
			},
			EstimatedCost: baseActivities + baseFood + 30,
		},
	}

	transportCost := min(req.Budget*0.3, transportCap)

	note := "This is a sample plan. For AI-generated personalized plans, please add your Gemini API key to the .env file."
	if p.AI != nil {
		note = "AI generation was unavailable for this request; this is a sample plan built from our destination catalog."
	}

	return &models.TravelPlan{
		Destination: models.Destination{
			Name:        rec.Name,
			Country:     rec.Country,
			Description: rec.Description,
		},
		Itinerary: itinerary,
		Accommodation: &models.Accommodation{
			Type:                  "Mid-range Hotel",
			EstimatedCostPerNight: baseAccommodation,
			Recommendations:       []string{"Hotel Paradise", "City Center Inn", "Comfort Lodge"},
		},
		Transportation: &models.Transportation{
			Type:            "Mixed (Flight + Local Transport)",
			EstimatedCost:   transportCost,
			Recommendations: "Book flights in advance for better prices. Use local transport for city travel.",
		},
		// The total is capped at 95% of budget, leaving a deliberate margin.
		// The breakdown below is a separate, percentage-based view of the
		// budget and is not required to reconcile with the itinerary costs.
		TotalEstimatedCost: min(req.Budget, req.Budget*0.95),
		BudgetBreakdown: models.BudgetBreakdown{
			Accommodation:  baseAccommodation * 3,
			Transportation: transportCost,
			Food:           baseFood * 3,
			Activities:     baseActivities * 3,
			Miscellaneous:  req.Budget * 0.1,
		},
		Tips:               rec.Tips,
		BestTimeToVisit:    rec.BestTime,
		LocalCuisine:       rec.Cuisine,
		CulturalHighlights: rec.Culture,
		AIGenerated:        false,
		Note:               note,
	}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
