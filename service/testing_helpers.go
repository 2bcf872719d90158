package service

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/craftally/studio/internal/auth"
	"github.com/craftally/studio/internal/session"
	"github.com/craftally/studio/storage"
	"github.com/craftally/studio/storage/db"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// stubGenerator satisfies ContentGenerator without touching the network.
type stubGenerator struct {
	textErr    error
	imageErr   error
	lastPrompt string
}

func (g *stubGenerator) GenerateText(_ context.Context, prompt string, _ int) (string, error) {
	g.lastPrompt = prompt
	if g.textErr != nil {
		return "", g.textErr
	}
	return "Generated: " + prompt, nil
}

func (g *stubGenerator) GenerateMarketingCopy(ctx context.Context, craftDescription, targetAudience string) (string, error) {
	return g.GenerateText(ctx, "marketing copy for "+craftDescription, 0)
}

func (g *stubGenerator) GenerateSocialMediaPost(ctx context.Context, craftDescription, platform string) (string, error) {
	return g.GenerateText(ctx, fmt.Sprintf("%s post for %s", platform, craftDescription), 0)
}

func (g *stubGenerator) GenerateCraftStory(ctx context.Context, craftDescription string) (string, error) {
	return g.GenerateText(ctx, "craft story for "+craftDescription, 0)
}

func (g *stubGenerator) GenerateProductVisualDescription(ctx context.Context, productName, craftType string) (string, error) {
	return g.GenerateText(ctx, fmt.Sprintf("visual of %s (%s)", productName, craftType), 0)
}

func (g *stubGenerator) GenerateImage(_ context.Context, prompt, _ string) (string, error) {
	g.lastPrompt = prompt
	if g.imageErr != nil {
		return "", g.imageErr
	}
	return "stub-image.png", nil
}

// setupTestService creates a service instance with an in-memory database
func setupTestService(t *testing.T) (*Service, *stubGenerator) {
	t.Helper()

	_, queries, cleanup, err := storage.NewTestDB()
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(cleanup)

	store := &storage.Storage{
		Queries: queries,
	}

	generator := &stubGenerator{}
	svc := &Service{
		storage:   store,
		config:    &Config{Environment: "test", Port: "8080"},
		generator: generator,
		sessions:  session.NewManager("test-secret"),
	}

	return svc, generator
}

// setupTestEcho creates an Echo instance with routes registered
func setupTestEcho(t *testing.T) (*echo.Echo, *Service, *stubGenerator) {
	t.Helper()

	e := echo.New()
	svc, generator := setupTestService(t)
	svc.RegisterRoutes(e)

	return e, svc, generator
}

// createTestArtisan inserts an artisan with a bcrypt-hashed password
func createTestArtisan(t *testing.T, svc *Service, username, email, password string) db.Artisan {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	artisan, err := svc.storage.Queries.CreateArtisan(context.Background(), db.CreateArtisanParams{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CraftType:    sql.NullString{String: "Pottery", Valid: true},
		Bio:          sql.NullString{String: "Hand-thrown stoneware", Valid: true},
	})
	require.NoError(t, err)
	return artisan
}

// postForm issues a form-encoded POST and returns the recorder
func postForm(e *echo.Echo, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	attachCookies(req, cookies)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func getPage(e *echo.Echo, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	attachCookies(req, cookies)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// login authenticates and returns the session cookies for later requests
func login(t *testing.T, e *echo.Echo, username, password string) []*http.Cookie {
	t.Helper()

	rec := postForm(e, "/login", url.Values{
		"username": {username},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get("Location"))
	return rec.Result().Cookies()
}

// attachCookies adds cookies to a request, keeping only the most recent value
// per name since a handler may save the session more than once.
func attachCookies(req *http.Request, cookies []*http.Cookie) {
	latest := map[string]*http.Cookie{}
	order := []string{}
	for _, c := range cookies {
		if _, seen := latest[c.Name]; !seen {
			order = append(order, c.Name)
		}
		latest[c.Name] = c
	}
	for _, name := range order {
		req.AddCookie(latest[name])
	}
}
