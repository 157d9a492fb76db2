package store

import (
	"errors"
	"sync"
	"time"

	"travel-planner-api/internal/models"
)

// ErrPlanNotFound covers both "no such plan" and "plan owned by someone
// else". Deletion deliberately returns the same error for both so a caller
// cannot probe which plan ids exist.
var ErrPlanNotFound = errors.New("plan not found or access denied")

// PlanStore is the in-memory travel-plan collection.
type PlanStore struct {
	mu     sync.Mutex
	plans  []*models.StoredPlan
	nextID int64
}

func NewPlanStore() *PlanStore {
	return &PlanStore{nextID: 1}
}

// Create assigns the next sequential id and records the plan for userID.
func (s *PlanStore) Create(userID int64, input models.TravelRequest, plan models.TravelPlan) *models.StoredPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := &models.StoredPlan{
		ID:        s.nextID,
		UserID:    userID,
		UserInput: input,
		Plan:      plan,
		Type:      "ai_generated",
		CreatedAt: time.Now(),
	}
	s.nextID++
	s.plans = append(s.plans, stored)
	return stored
}

// ListForUser returns the user's plans in creation order. The result is never
// nil so it serializes as an empty JSON array rather than null.
func (s *PlanStore) ListForUser(userID int64) []*models.StoredPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []*models.StoredPlan{}
	for _, p := range s.plans {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	return result
}

// FindForUser returns a single plan if it exists and belongs to userID.
func (s *PlanStore) FindForUser(userID, planID int64) (*models.StoredPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.plans {
		if p.ID == planID && p.UserID == userID {
			return p, nil
		}
	}
	return nil, ErrPlanNotFound
}

// DeleteForUser removes a plan only when it exists and belongs to userID.
func (s *PlanStore) DeleteForUser(userID, planID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.plans {
		if p.ID == planID && p.UserID == userID {
			s.plans = append(s.plans[:i], s.plans[i+1:]...)
			return nil
		}
	}
	return ErrPlanNotFound
}
