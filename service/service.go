package service

import (
	"context"
	"net/http"

	"github.com/craftally/studio/internal/auth"
	"github.com/craftally/studio/internal/middleware"
	"github.com/craftally/studio/internal/session"
	"github.com/craftally/studio/storage"
	"github.com/craftally/studio/views"
	"github.com/labstack/echo/v4"
)

// ContentGenerator is the slice of the generation client the handlers use.
// Tests substitute a stub; production wires *genai.Client.
type ContentGenerator interface {
	GenerateText(ctx context.Context, prompt string, maxOutputTokens int) (string, error)
	GenerateMarketingCopy(ctx context.Context, craftDescription, targetAudience string) (string, error)
	GenerateSocialMediaPost(ctx context.Context, craftDescription, platform string) (string, error)
	GenerateCraftStory(ctx context.Context, craftDescription string) (string, error)
	GenerateProductVisualDescription(ctx context.Context, productName, craftType string) (string, error)
	GenerateImage(ctx context.Context, prompt, aspectRatio string) (string, error)
}

type Service struct {
	storage   *storage.Storage
	config    *Config
	generator ContentGenerator
	sessions  *session.Manager
}

func New(storage *storage.Storage, config *Config, generator ContentGenerator) *Service {
	return &Service{
		storage:   storage,
		config:    config,
		generator: generator,
		sessions:  session.NewManager(config.Session.Secret),
	}
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	e.Renderer = views.MustRenderer()

	// Static files - generated images live under static/generated_images
	e.Static("/static", "static")

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// JSON API - no session required, mirrors the form-field contract of the
	// original integration clients
	api := e.Group("/api")
	api.POST("/generate_marketing_copy", s.handleAPIGenerateMarketingCopy)
	api.POST("/generate_social_media_post", s.handleAPIGenerateSocialMediaPost)
	api.POST("/generate_craft_story", s.handleAPIGenerateCraftStory)
	api.POST("/generate_product_visual", s.handleAPIGenerateProductVisual)

	// HTML surface
	withSession := e.Group("")
	withSession.Use(middleware.LoadSession(s.sessions))

	withSession.GET("/", s.handleIndex)
	withSession.GET("/register", s.handleRegisterPage)
	withSession.POST("/register", s.handleRegister)
	withSession.GET("/login", s.handleLoginPage)
	withSession.POST("/login", s.handleLogin)
	withSession.GET("/logout", s.handleLogout)

	authed := withSession.Group("")
	authed.Use(middleware.RequireLogin())
	authed.GET("/dashboard", s.handleDashboard)
	authed.GET("/generate_content", s.handleGenerateContentPage)
	authed.POST("/generate_content", s.handleGenerateContent)
	authed.GET("/preview/:id", s.handlePreview)
	authed.POST("/preview/:id", s.handlePreviewAction)
	authed.POST("/delete_content/:id", s.handleDeleteContent)
}

// render executes a page template with the auth context and any pending flash
// notices folded into the data map.
func (s *Service) render(c echo.Context, name string, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}
	if _, ok := data["Title"]; !ok {
		data["Title"] = "Craftally"
	}
	data["Auth"] = auth.GetAuthContext(c)
	data["Flashes"] = s.sessions.Flashes(c)
	return c.Render(http.StatusOK, name, data)
}

// flashAndRedirect queues a notice and sends the browser elsewhere. Flash
// failures are not worth failing the request over.
func (s *Service) flashAndRedirect(c echo.Context, message, location string) error {
	_ = s.sessions.Flash(c, message)
	return c.Redirect(http.StatusFound, location)
}

func (s *Service) handleIndex(c echo.Context) error {
	if _, ok := auth.UserID(c); ok {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	return c.Redirect(http.StatusFound, "/login")
}
