package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"travel-planner-api/internal/config"
	"travel-planner-api/internal/handlers"
	"travel-planner-api/internal/planner"
	"travel-planner-api/internal/routes"
	"travel-planner-api/internal/session"
	"travel-planner-api/internal/store"
)

// newTestServer builds the full router with fresh in-memory state and no AI,
// so every plan goes through the deterministic synthesizer.
func newTestServer() *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := &handlers.Handlers{
		Config: &config.Config{
			Port:         "8080",
			FrontendURLs: []string{"http://localhost:5173"},
		},
		Users:    store.NewUserStore(),
		Plans:    store.NewPlanStore(),
		Sessions: session.NewManager(),
		Planner:  planner.New(nil),
	}
	return routes.SetupRouter(h)
}

// doJSON performs a request with an optional JSON body and session cookies.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// register creates an account and returns the session cookies it was issued.
func register(t *testing.T, router *gin.Engine, name, email, password string) []*http.Cookie {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/register", map[string]string{
		"name":             name,
		"email":            email,
		"password":         password,
		"confirm_password": password,
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", w.Code, w.Body.String())
	}

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("register did not set a session cookie")
	}
	return cookies
}

// decode unmarshals a response body into dst.
func decode(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decoding response %q: %v", w.Body.String(), err)
	}
}
