package planner

import (
	"context"
	"errors"
	"testing"

	"travel-planner-api/internal/models"
)

// fakeGenerator stands in for the AI adapter.
type fakeGenerator struct {
	plan *models.TravelPlan
	err  error
}

func (f *fakeGenerator) GeneratePlan(ctx context.Context, req models.TravelRequest) (*models.TravelPlan, error) {
	return f.plan, f.err
}

func request(dest string, budget float64, travelers int) models.TravelRequest {
	return models.TravelRequest{Destinations: dest, Budget: budget, Travelers: travelers}
}

func TestGenerateUsesAIPlanWhenAvailable(t *testing.T) {
	want := &models.TravelPlan{
		Destination: models.Destination{Name: "Kerala"},
		AIGenerated: true,
	}
	p := New(&fakeGenerator{plan: want})

	got := p.Generate(context.Background(), request("Kerala", 1000, 2))
	if got != want {
		t.Error("AI plan was not returned as-is")
	}
}

func TestGenerateFallsBackSilentlyOnAIError(t *testing.T) {
	p := New(&fakeGenerator{err: errors.New("network down")})

	plan := p.Generate(context.Background(), request("Kerala", 1000, 2))

	if plan.AIGenerated {
		t.Error("fallback plan tagged AI-generated")
	}
	if plan.Destination.Name != "Kerala" {
		t.Errorf("Destination.Name = %q, want Kerala", plan.Destination.Name)
	}
	if plan.Note == "" {
		t.Error("fallback plan missing user-facing note")
	}
}

func TestGenerateWithoutAIUsesDeterministicPath(t *testing.T) {
	p := New(nil)

	plan := p.Generate(context.Background(), request("Rajasthan", 2000, 3))

	if plan.AIGenerated {
		t.Error("deterministic plan tagged AI-generated")
	}
	if plan.Destination.Name != "Rajasthan" {
		t.Errorf("Destination.Name = %q", plan.Destination.Name)
	}
	if len(plan.Itinerary) != 3 {
		t.Fatalf("itinerary has %d days, want 3", len(plan.Itinerary))
	}
}

func TestTotalNeverExceedsBudget(t *testing.T) {
	p := New(nil)
	budgets := []float64{1, 50, 100, 999, 1000, 5000, 123456}

	for _, budget := range budgets {
		plan := p.Generate(context.Background(), request("Goa", budget, 2))
		if plan.TotalEstimatedCost > budget {
			t.Errorf("budget %v: total %v exceeds budget", budget, plan.TotalEstimatedCost)
		}
	}
}

func TestDeterministicCostModel(t *testing.T) {
	p := New(nil)
	travelers := 2
	plan := p.Generate(context.Background(), request("Kerala", 1000, travelers))

	// Bases scale with traveler count: food 50/t, activities 40/t.
	wantDayCosts := []float64{
		50*2 + 20,        // day 1: food + fixed increment
		40*2 + 50*2,      // day 2: activities + food
		40*2 + 50*2 + 30, // day 3: activities + food + larger increment
	}
	for i, want := range wantDayCosts {
		if got := plan.Itinerary[i].EstimatedCost; got != want {
			t.Errorf("day %d cost = %v, want %v", i+1, got, want)
		}
	}

	if plan.Accommodation == nil || plan.Accommodation.EstimatedCostPerNight != 80*2 {
		t.Errorf("accommodation per-night = %+v, want 160", plan.Accommodation)
	}

	// Transportation is capped at 30% of budget or 500, whichever is lower.
	if plan.Transportation == nil || plan.Transportation.EstimatedCost != 300 {
		t.Errorf("transportation = %+v, want 300", plan.Transportation)
	}

	bd := plan.BudgetBreakdown
	if bd.Accommodation != 160*3 || bd.Food != 100*3 || bd.Activities != 80*3 {
		t.Errorf("breakdown = %+v", bd)
	}
	if bd.Miscellaneous != 100 {
		t.Errorf("miscellaneous = %v, want 10%% of budget", bd.Miscellaneous)
	}
}

func TestTransportationCap(t *testing.T) {
	p := New(nil)

	plan := p.Generate(context.Background(), request("Goa", 10000, 1))
	if plan.Transportation.EstimatedCost != 500 {
		t.Errorf("transportation = %v, want capped at 500", plan.Transportation.EstimatedCost)
	}
}

func TestPrimaryDestinationIsFirstCommaSegment(t *testing.T) {
	p := New(nil)

	plan := p.Generate(context.Background(), request("Kerala, Goa, Rajasthan", 1500, 2))
	if plan.Destination.Name != "Kerala" {
		t.Errorf("Destination.Name = %q, want Kerala", plan.Destination.Name)
	}
}

func TestUnknownDestinationStillProducesFullPlan(t *testing.T) {
	p := New(nil)

	plan := p.Generate(context.Background(), request("Atlantis", 800, 1))

	if plan.Destination.Name != "Atlantis" {
		t.Errorf("Destination.Name = %q", plan.Destination.Name)
	}
	if plan.Destination.Country != "Various" {
		t.Errorf("Country = %q, want Various", plan.Destination.Country)
	}
	if len(plan.Itinerary) != 3 {
		t.Errorf("itinerary has %d days, want 3", len(plan.Itinerary))
	}
	for _, day := range plan.Itinerary {
		if len(day.Activities) == 0 {
			t.Errorf("day %d has no activities", day.Day)
		}
	}
}
