package handlers

import (
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"

	"travel-planner-api/internal/models"
	"travel-planner-api/internal/store"
)

var (
	emailPattern  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// RegisterInput deliberately carries no binding tags: the validation rules
// below are checked one at a time, in a fixed order, so the first failure
// decides the error message.
type RegisterInput struct {
	Name            string `json:"name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Email           string `json:"email"`
	Mobile          string `json:"mobile"`
}

// Register creates an account and opens a session for it.
func (h *Handlers) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	// 1. --- Required fields ---
	required := []struct{ name, value string }{
		{"name", input.Name},
		{"password", input.Password},
		{"confirm_password", input.ConfirmPassword},
	}
	for _, f := range required {
		if f.value == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required field: " + f.name})
			return
		}
	}

	if input.Password != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}

	if input.Email == "" && input.Mobile == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either email or mobile number is required"})
		return
	}

	// 2. --- Identifier format and availability ---
	// These lookups are advisory; Create repeats the duplicate checks under
	// the store lock, which is what actually prevents a racing double-register.
	if input.Email != "" {
		if !emailPattern.MatchString(input.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email format"})
			return
		}
		if _, err := h.Users.FindByEmail(input.Email); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
	}
	if input.Mobile != "" {
		if !mobilePattern.MatchString(input.Mobile) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid mobile number format"})
			return
		}
		if _, err := h.Users.FindByMobile(input.Mobile); err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Mobile number already registered"})
			return
		}
	}

	// 3. --- Hash the password ---
	var password models.Password
	if err := password.Set(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		Mobile:       input.Mobile,
		PasswordHash: password.Hash,
	}

	// 4. --- Store (authoritative duplicate check) ---
	if err := h.Users.Create(user); err != nil {
		switch {
		case errors.Is(err, store.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		case errors.Is(err, store.ErrMobileTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Mobile number already registered"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	// 5. --- Open the session ---
	token := h.Sessions.Create(user.ID)
	setSessionCookie(c, token)

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    user,
	})
}

type LoginInput struct {
	Password string `json:"password"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
}

// Login authenticates by email or mobile and opens a session.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	if input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}
	if input.Email == "" && input.Mobile == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either email or mobile number is required"})
		return
	}

	var (
		user *models.User
		err  error
	)
	if input.Email != "" {
		user, err = h.Users.FindByEmail(input.Email)
	} else {
		user, err = h.Users.FindByMobile(input.Mobile)
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	password := models.Password{Hash: user.PasswordHash}
	match, err := password.Matches(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify password"})
		return
	}
	if !match {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token := h.Sessions.Create(user.ID)
	setSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    user,
	})
}

// Logout destroys the current session and clears the cookie.
func (h *Handlers) Logout(c *gin.Context) {
	if v, exists := c.Get("sessionToken"); exists {
		if token, ok := v.(string); ok {
			h.Sessions.Destroy(token)
		}
	}
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// CurrentUser returns the authenticated user's account record.
func (h *Handlers) CurrentUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.Users.FindByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
