// Package ai wraps the Gemini text-generation API behind a plan-generation
// contract. Every failure mode maps to one of the sentinel errors below so the
// planner can fall back to deterministic synthesis without inspecting details.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"travel-planner-api/internal/models"
)

var (
	// ErrUnavailable means no usable API key was configured at startup.
	ErrUnavailable = errors.New("ai: no API key configured")
	// ErrRequest covers network failures and timeouts talking to the API.
	ErrRequest = errors.New("ai: request failed")
	// ErrParse means the response contained nothing extractable at all.
	ErrParse = errors.New("ai: unparseable response")
)

// requestTimeout bounds the single attempt made per plan generation. There is
// no retry; the caller falls back to the deterministic synthesizer instead.
const requestTimeout = 30 * time.Second

// Service holds the Gemini client. A nil *Service is a valid "AI disabled"
// adapter whose GeneratePlan always returns ErrUnavailable.
type Service struct {
	client *genai.Client
	model  string
}

// NewService initializes the Gemini client with the given key and model name.
func NewService(ctx context.Context, apiKey, model string) (*Service, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &Service{client: client, model: model}, nil
}

// Close releases the underlying client.
func (s *Service) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

// GeneratePlan asks Gemini for a structured travel plan. When the response
// text parses as the expected JSON shape the plan is returned as-is, tagged
// AI-generated. When it does not, but the model did answer with something,
// a degraded plan carrying the raw text is returned instead of an error;
// only a completely empty response raises ErrParse.
func (s *Service) GeneratePlan(ctx context.Context, req models.TravelRequest) (*models.TravelPlan, error) {
	if s == nil || s.client == nil {
		return nil, ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	model := s.client.GenerativeModel(s.model)
	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(req)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequest, err)
	}

	text := responseText(resp)
	if strings.TrimSpace(text) == "" {
		return nil, ErrParse
	}

	return parsePlan(req, text)
}

// responseText flattens the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String()
}

// parsePlan coerces the model's free-form text into a TravelPlan, degrading
// gracefully when the JSON does not match the requested shape.
func parsePlan(req models.TravelRequest, text string) (*models.TravelPlan, error) {
	raw, ok := extractJSON(text)
	if !ok {
		return degradedPlan(req, text), nil
	}

	var plan models.TravelPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return degradedPlan(req, text), nil
	}

	plan.AIGenerated = true
	return &plan, nil
}

// extractJSON pulls a JSON object out of the response text. A fenced
// ```json block wins; otherwise everything from the first '{' to the last '}'
// is taken.
func extractJSON(text string) (string, bool) {
	if idx := strings.Index(text, "```json"); idx >= 0 {
		rest := text[idx+len("```json"):]
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end]), true
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1], true
	}
	return "", false
}

// degradedPlan is the best-effort result when the response text could not be
// parsed: still AI-origin, with the raw text attached for display.
func degradedPlan(req models.TravelRequest, text string) *models.TravelPlan {
	name := strings.TrimSpace(strings.Split(req.Destinations, ",")[0])
	return &models.TravelPlan{
		Destination: models.Destination{
			Name:        name,
			Country:     "Various",
			Description: "AI-generated travel plan",
		},
		TotalEstimatedCost: req.Budget,
		AIGenerated:        true,
		Note:               "AI generated a detailed plan. Check ai_response for full details.",
		RawAIResponse:      text,
	}
}
