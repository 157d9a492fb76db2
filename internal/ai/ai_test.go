package ai

import (
	"context"
	"strings"
	"testing"

	"travel-planner-api/internal/models"
)

func TestExtractJSONPrefersFencedBlock(t *testing.T) {
	text := "Here is your plan:\n```json\n{\"total_estimated_cost\": 900}\n```\nEnjoy! {not json}"

	raw, ok := extractJSON(text)
	if !ok {
		t.Fatal("extractJSON failed on fenced block")
	}
	if raw != `{"total_estimated_cost": 900}` {
		t.Errorf("extracted %q", raw)
	}
}

func TestExtractJSONFallsBackToBraces(t *testing.T) {
	text := `Sure thing! {"destination": {"name": "Goa"}} Hope that helps.`

	raw, ok := extractJSON(text)
	if !ok {
		t.Fatal("extractJSON failed on brace span")
	}
	if !strings.HasPrefix(raw, "{") || !strings.HasSuffix(raw, "}") {
		t.Errorf("extracted %q, want brace-delimited span", raw)
	}
	if !strings.Contains(raw, `"Goa"`) {
		t.Errorf("extracted %q, want destination content", raw)
	}
}

func TestExtractJSONNothingExtractable(t *testing.T) {
	if _, ok := extractJSON("I cannot help with that."); ok {
		t.Error("extractJSON succeeded on text without JSON")
	}
}

func TestParsePlanWellFormedResponse(t *testing.T) {
	req := models.TravelRequest{Destinations: "Kerala", Budget: 1000, Travelers: 2}
	text := "```json\n" + `{
		"destination": {"name": "Kerala", "country": "India", "description": "Backwaters"},
		"itinerary": [{"day": 1, "title": "Arrival", "activities": ["Check-in"], "estimated_cost": 100}],
		"total_estimated_cost": 950,
		"tips": ["Pack light"]
	}` + "\n```"

	plan, err := parsePlan(req, text)
	if err != nil {
		t.Fatalf("parsePlan failed: %v", err)
	}
	if !plan.AIGenerated {
		t.Error("parsed plan not tagged AI-generated")
	}
	if plan.Destination.Name != "Kerala" {
		t.Errorf("Destination.Name = %q", plan.Destination.Name)
	}
	if plan.TotalEstimatedCost != 950 {
		t.Errorf("TotalEstimatedCost = %v", plan.TotalEstimatedCost)
	}
	if plan.RawAIResponse != "" {
		t.Error("well-formed response must not carry raw text")
	}
}

func TestParsePlanDegradesOnUnparseableText(t *testing.T) {
	req := models.TravelRequest{Destinations: "Kerala, Goa", Budget: 1200, Travelers: 2}
	text := "Day 1: fly to Kochi. Day 2: houseboat. Total roughly $1100."

	plan, err := parsePlan(req, text)
	if err != nil {
		t.Fatalf("parsePlan should degrade, not fail: %v", err)
	}
	if !plan.AIGenerated {
		t.Error("degraded plan must stay AI-origin")
	}
	if plan.Destination.Name != "Kerala" {
		t.Errorf("Destination.Name = %q, want first comma segment", plan.Destination.Name)
	}
	if plan.Destination.Country != "Various" {
		t.Errorf("Destination.Country = %q", plan.Destination.Country)
	}
	if plan.TotalEstimatedCost != 1200 {
		t.Errorf("TotalEstimatedCost = %v, want requested budget", plan.TotalEstimatedCost)
	}
	if plan.RawAIResponse != text {
		t.Error("degraded plan must carry the raw response text")
	}
}

func TestParsePlanDegradesOnMalformedJSON(t *testing.T) {
	req := models.TravelRequest{Destinations: "Goa", Budget: 800, Travelers: 1}
	text := `{"destination": {"name": "Goa", }` // trailing comma, unclosed

	plan, err := parsePlan(req, text)
	if err != nil {
		t.Fatalf("parsePlan should degrade, not fail: %v", err)
	}
	if plan.RawAIResponse == "" {
		t.Error("malformed JSON must produce a degraded plan with raw text")
	}
}

func TestGeneratePlanWithoutClient(t *testing.T) {
	var s *Service
	if _, err := s.GeneratePlan(context.Background(), models.TravelRequest{}); err != ErrUnavailable {
		t.Errorf("nil service error = %v, want ErrUnavailable", err)
	}
}

func TestBuildPromptEmbedsRequestFields(t *testing.T) {
	req := models.TravelRequest{
		Destinations: "Rajasthan, Goa",
		Budget:       2500,
		Travelers:    4,
		StartDate:    "2025-01-10",
		Preferences:  "heritage hotels",
	}

	prompt := buildPrompt(req)

	for _, want := range []string{
		"Rajasthan, Goa",
		"$2500",
		"4 people",
		"2025-01-10",
		"heritage hotels",
		"JSON format",
		`"budget_breakdown"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	// Unset optional fields fall back to readable defaults.
	if !strings.Contains(prompt, "Flexible") {
		t.Error("prompt missing Flexible default for open-ended dates")
	}
	if !strings.Contains(prompt, "Notes: None") {
		t.Error("prompt missing None default for notes")
	}
}
