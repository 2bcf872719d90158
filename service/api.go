package service

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// The JSON API mirrors the original integration surface: form fields in, a
// single-key JSON object out, 400 with an error key when required fields are
// missing. Remote failures are embedded as readable text rather than failing
// the request, matching the HTML flow.

func (s *Service) handleAPIGenerateMarketingCopy(c echo.Context) error {
	craftType, description, ok := requireCraftFields(c)
	if !ok {
		return nil
	}

	prompt := fmt.Sprintf("Generate marketing copy for %s with description: %s", craftType, description)
	generated := s.apiText(c, func() (string, error) {
		return s.generator.GenerateMarketingCopy(c.Request().Context(), prompt, "general")
	})
	return c.JSON(http.StatusOK, map[string]string{"marketing_copy": generated})
}

func (s *Service) handleAPIGenerateSocialMediaPost(c echo.Context) error {
	craftType, description, ok := requireCraftFields(c)
	if !ok {
		return nil
	}
	platform := c.FormValue("platform")
	if platform == "" {
		platform = "Instagram"
	}

	prompt := fmt.Sprintf("Generate a social media post for %s on %s with description: %s", craftType, platform, description)
	generated := s.apiText(c, func() (string, error) {
		return s.generator.GenerateSocialMediaPost(c.Request().Context(), prompt, platform)
	})
	return c.JSON(http.StatusOK, map[string]string{"social_media_post": generated})
}

func (s *Service) handleAPIGenerateCraftStory(c echo.Context) error {
	craftType, description, ok := requireCraftFields(c)
	if !ok {
		return nil
	}

	craftDescription := fmt.Sprintf("%s with description: %s", craftType, description)
	generated := s.apiText(c, func() (string, error) {
		return s.generator.GenerateCraftStory(c.Request().Context(), craftDescription)
	})
	return c.JSON(http.StatusOK, map[string]string{"craft_story": generated})
}

func (s *Service) handleAPIGenerateProductVisual(c echo.Context) error {
	craftType, _, ok := requireCraftFields(c)
	if !ok {
		return nil
	}

	productName := craftType + " product"
	generated := s.apiText(c, func() (string, error) {
		return s.generator.GenerateProductVisualDescription(c.Request().Context(), productName, craftType)
	})
	return c.JSON(http.StatusOK, map[string]string{"product_visual_description": generated})
}

// requireCraftFields validates the shared form contract. On failure it writes
// the 400 response itself and returns ok=false.
func requireCraftFields(c echo.Context) (craftType, description string, ok bool) {
	craftType = c.FormValue("craft_type")
	description = c.FormValue("description")
	if craftType == "" || description == "" {
		_ = c.JSON(http.StatusBadRequest, map[string]string{"error": "Missing craft_type or description"})
		return "", "", false
	}
	return craftType, description, true
}

func (s *Service) apiText(c echo.Context, generate func() (string, error)) string {
	if s.generator == nil {
		return "Error generating text: generation client is not configured"
	}

	text, err := generate()
	if err != nil {
		slog.Error("API generation failed", "error", err, "path", c.Path())
		return fmt.Sprintf("Error generating text: %v", err)
	}
	return text
}
