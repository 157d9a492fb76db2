package models

import "time"

// TravelRequest is the user's plan-generation input. Destinations is free
// text and may contain several comma-separated places; the first segment is
// the one used for catalog lookup.
type TravelRequest struct {
	Destinations string  `json:"destinations" binding:"required"`
	Budget       float64 `json:"budget" binding:"required,gt=0"`
	Travelers    int     `json:"travelers" binding:"required,gt=0"`
	StartDate    string  `json:"start_date,omitempty"`
	EndDate      string  `json:"end_date,omitempty"`
	Preferences  string  `json:"preferences,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

// Destination is the summary block at the top of every plan.
type Destination struct {
	Name        string `json:"name"`
	Country     string `json:"country"`
	Description string `json:"description"`
}

// DayPlan is one itinerary entry.
type DayPlan struct {
	Day           int      `json:"day"`
	Title         string   `json:"title"`
	Activities    []string `json:"activities"`
	EstimatedCost float64  `json:"estimated_cost"`
}

type Accommodation struct {
	Type                  string   `json:"type"`
	EstimatedCostPerNight float64  `json:"estimated_cost_per_night"`
	Recommendations       []string `json:"recommendations"`
}

type Transportation struct {
	Type            string  `json:"type"`
	EstimatedCost   float64 `json:"estimated_cost"`
	Recommendations string  `json:"recommendations"`
}

// BudgetBreakdown allocates the stated budget across categories. It is
// computed independently of the per-day itinerary costs and the two views are
// not required to reconcile.
type BudgetBreakdown struct {
	Accommodation  float64 `json:"accommodation"`
	Transportation float64 `json:"transportation"`
	Food           float64 `json:"food"`
	Activities     float64 `json:"activities"`
	Miscellaneous  float64 `json:"miscellaneous"`
}

// TravelPlan is a generated itinerary, either parsed from the AI response or
// built by the deterministic synthesizer. RawAIResponse is only set on the
// degraded path, when the AI answered but its output could not be parsed as
// this structure.
type TravelPlan struct {
	Destination        Destination     `json:"destination"`
	Itinerary          []DayPlan       `json:"itinerary"`
	Accommodation      *Accommodation  `json:"accommodation,omitempty"`
	Transportation     *Transportation `json:"transportation,omitempty"`
	TotalEstimatedCost float64         `json:"total_estimated_cost"`
	BudgetBreakdown    BudgetBreakdown `json:"budget_breakdown"`
	Tips               []string        `json:"tips"`
	BestTimeToVisit    string          `json:"best_time_to_visit"`
	LocalCuisine       []string        `json:"local_cuisine"`
	CulturalHighlights []string        `json:"cultural_highlights"`
	AIGenerated        bool            `json:"ai_generated"`
	Note               string          `json:"note,omitempty"`
	RawAIResponse      string          `json:"ai_response,omitempty"`
}

// StoredPlan is a plan record owned by the user who generated it.
type StoredPlan struct {
	ID        int64         `json:"id"`
	UserID    int64         `json:"user_id"`
	UserInput TravelRequest `json:"user_input"`
	Plan      TravelPlan    `json:"ai_plan"`
	Type      string        `json:"type"`
	CreatedAt time.Time     `json:"created_at"`
}
