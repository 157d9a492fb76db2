package ai

import (
	"fmt"
	"strings"

	"travel-planner-api/internal/models"
)

// planShape is the JSON structure the model is asked to produce. It mirrors
// models.TravelPlan so a well-behaved response unmarshals directly.
const planShape = `{
    "destination": {
        "name": "Main destination name",
        "country": "Country",
        "description": "Brief description"
    },
    "itinerary": [
        {
            "day": 1,
            "title": "Day title",
            "activities": ["Activity 1", "Activity 2"],
            "estimated_cost": 100
        }
    ],
    "accommodation": {
        "type": "Hotel type",
        "estimated_cost_per_night": 80,
        "recommendations": ["Hotel 1", "Hotel 2"]
    },
    "transportation": {
        "type": "Transport type",
        "estimated_cost": 300,
        "recommendations": "Transport tips"
    },
    "total_estimated_cost": 1000,
    "budget_breakdown": {
        "accommodation": 300,
        "transportation": 200,
        "food": 250,
        "activities": 200,
        "miscellaneous": 50
    },
    "tips": ["Tip 1", "Tip 2"],
    "best_time_to_visit": "Season info",
    "local_cuisine": ["Food 1", "Food 2"],
    "cultural_highlights": ["Culture 1", "Culture 2"]
}`

// buildPrompt embeds the request fields and the expected output shape into a
// natural-language instruction for the model.
func buildPrompt(req models.TravelRequest) string {
	orDefault := func(v, fallback string) string {
		if strings.TrimSpace(v) == "" {
			return fallback
		}
		return v
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Create a detailed travel plan for the following destinations: %s\n\n", req.Destinations)
	b.WriteString("IMPORTANT: For each destination mentioned, include the most famous and must-visit places within that region.\n\n")
	b.WriteString("For example:\n")
	b.WriteString("- If destination is \"Uttar Pradesh\" or \"UP\", include places like Agra (Taj Mahal), Varanasi, Mathura, Vrindavan, Lucknow, Ayodhya, Allahabad\n")
	b.WriteString("- If destination is \"Rajasthan\", include Jaipur, Udaipur, Jodhpur, Jaisalmer, Pushkar, Mount Abu\n")
	b.WriteString("- If destination is \"Kerala\", include Kochi, Munnar, Alleppey, Thekkady, Wayanad\n")
	b.WriteString("- If destination is \"Goa\", include North Goa beaches, South Goa, Old Goa churches, Dudhsagar Falls\n")
	b.WriteString("- If destination is \"Himachal Pradesh\", include Shimla, Manali, Dharamshala, Kasol, Spiti Valley\n\n")

	b.WriteString("Travel Requirements:\n")
	fmt.Fprintf(&b, "Budget: $%.0f\n", req.Budget)
	fmt.Fprintf(&b, "Travelers: %d people\n", req.Travelers)
	fmt.Fprintf(&b, "Destinations: %s\n", req.Destinations)
	fmt.Fprintf(&b, "Travel dates: %s to %s\n", orDefault(req.StartDate, "Flexible"), orDefault(req.EndDate, "Flexible"))
	fmt.Fprintf(&b, "Preferences: %s\n", orDefault(req.Preferences, "General travel"))
	fmt.Fprintf(&b, "Notes: %s\n\n", orDefault(req.Notes, "None"))

	b.WriteString("Please provide a comprehensive travel plan in JSON format with this structure:\n")
	b.WriteString(planShape)
	fmt.Fprintf(&b, "\n\nMake sure the plan fits within $%.0f budget.\n", req.Budget)

	return b.String()
}
