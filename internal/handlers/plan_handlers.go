package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travel-planner-api/internal/models"
	"travel-planner-api/internal/pdf"
	"travel-planner-api/internal/store"
)

// GeneratePlan validates the travel request, runs the planner (AI with
// deterministic fallback) and records the result for the current user.
func (h *Handlers) GeneratePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req models.TravelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": missingFieldMessage(req, err)})
		return
	}

	// The planner absorbs AI failures internally; anything escaping here is
	// an unexpected defect and must not leak past the API boundary.
	plan, err := h.generate(c, req)
	if err != nil {
		log.Printf("Error generating travel plan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate travel plan"})
		return
	}

	stored := h.Plans.Create(userID, req, *plan)
	c.JSON(http.StatusCreated, stored)
}

func (h *Handlers) generate(c *gin.Context, req models.TravelRequest) (plan *models.TravelPlan, err error) {
	defer func() {
		if r := recover(); r != nil {
			plan, err = nil, fmt.Errorf("plan generation panicked: %v", r)
		}
	}()
	return h.Planner.Generate(c.Request.Context(), req), nil
}

// missingFieldMessage keeps binding failures user-readable: absent or invalid
// required fields report the field name instead of validator internals.
func missingFieldMessage(req models.TravelRequest, bindErr error) string {
	switch {
	case req.Destinations == "":
		return "Missing required field: destinations"
	case req.Budget <= 0:
		return "Missing required field: budget"
	case req.Travelers <= 0:
		return "Missing required field: travelers"
	}
	return "Invalid request: " + bindErr.Error()
}

// ListPlans returns all of the current user's stored plans.
func (h *Handlers) ListPlans(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, h.Plans.ListForUser(userID))
}

// DeletePlan removes one of the current user's plans. Plans that do not exist
// and plans owned by other users produce the same 404.
func (h *Handlers) DeletePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	planID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found or access denied"})
		return
	}

	if err := h.Plans.DeleteForUser(userID, planID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found or access denied"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Plan deleted successfully"})
}

// DownloadPlan renders one of the current user's plans as a PDF itinerary.
func (h *Handlers) DownloadPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	planID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found or access denied"})
		return
	}

	stored, err := h.Plans.FindForUser(userID, planID)
	if err != nil {
		if errors.Is(err, store.ErrPlanNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found or access denied"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plan"})
		return
	}

	data, err := pdf.RenderPlan(stored)
	if err != nil {
		log.Printf("PDF generation failed for plan %d: %v", planID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="itinerary-%d.pdf"`, planID))
	c.Data(http.StatusOK, "application/pdf", data)
}
