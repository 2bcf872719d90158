package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/craftally/studio/internal/auth"
	"github.com/craftally/studio/internal/genai"
	"github.com/craftally/studio/storage/db"
	"github.com/labstack/echo/v4"
)

// Content types an artisan can request. Anything else is refused before a
// generation call is made.
const (
	ContentTypeMarketingCopy = "marketing_copy"
	ContentTypeSocialCaption = "social_caption"
	ContentTypeCraftStory    = "craft_story"
	ContentTypeProductVisual = "product_visual"
	ContentTypeAdCopy        = "ad_copy"
	ContentTypeAboutPress    = "about_press"
	ContentTypeImage         = "image"
)

// Approval workflow states. There is no rejected state; unwanted drafts are
// deleted outright.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

type generateForm struct {
	ContentType  string
	Description  string
	ProductName  string
	Tone         string
	Language     string
	Person       string
	Platform     string
	AspectRatio  string
	IncludeQuote bool
}

func parseGenerateForm(c echo.Context) generateForm {
	return generateForm{
		ContentType:  c.FormValue("content_type"),
		Description:  strings.TrimSpace(c.FormValue("description")),
		ProductName:  strings.TrimSpace(c.FormValue("product_name")),
		Tone:         c.FormValue("tone"),
		Language:     c.FormValue("language"),
		Person:       c.FormValue("person"),
		Platform:     c.FormValue("platform"),
		AspectRatio:  c.FormValue("aspect_ratio"),
		IncludeQuote: c.FormValue("include_quote") != "",
	}
}

func (s *Service) handleGenerateContentPage(c echo.Context) error {
	return s.render(c, "content_generator.html", map[string]any{"Title": "Generate Content"})
}

func (s *Service) handleGenerateContent(c echo.Context) error {
	userID, _ := auth.UserID(c)
	ctx := c.Request().Context()
	form := parseGenerateForm(c)

	artisan, err := s.storage.Queries.GetArtisan(ctx, userID)
	if err != nil {
		slog.Error("failed to load artisan", "error", err, "id", userID)
		return s.flashAndRedirect(c, "Please log in again", "/logout")
	}

	if s.generator == nil {
		return s.flashAndRedirect(c, "Content generation is not configured", "/generate_content")
	}

	prompt := composePrompt(artisan, form)

	params := db.CreateGeneratedContentParams{
		ArtisanID:   userID,
		ContentType: form.ContentType,
		Prompt:      nullString(prompt),
	}
	if form.IncludeQuote {
		params.IncludeQuote = 1
	}

	if form.ContentType == ContentTypeImage {
		filename, err := s.generator.GenerateImage(ctx, prompt, form.AspectRatio)
		if err != nil {
			slog.Error("image generation failed", "error", err, "artisan_id", userID)
			if errors.Is(err, genai.ErrImageCredentials) {
				return s.flashAndRedirect(c, "Image generation requires service-account credentials", "/generate_content")
			}
			return s.flashAndRedirect(c, fmt.Sprintf("Image generation failed: %v", err), "/generate_content")
		}
		params.GeneratedImageUrl = nullString(filename)
	} else {
		text, err := s.dispatchTextGeneration(ctx, artisan, form, prompt)
		if err != nil {
			if errors.Is(err, errInvalidContentType) {
				return s.flashAndRedirect(c, "Invalid content type", "/generate_content")
			}
			// Remote failures surface as readable text on the draft so the
			// artisan sees what happened without losing the request.
			slog.Error("text generation failed", "error", err, "content_type", form.ContentType, "artisan_id", userID)
			text = fmt.Sprintf("Error generating text: %v", err)
		}
		params.GeneratedText = nullString(text)
	}

	item, err := s.storage.Queries.CreateGeneratedContent(ctx, params)
	if err != nil {
		slog.Error("failed to save generated content", "error", err, "artisan_id", userID)
		return s.flashAndRedirect(c, "Failed to save generated content", "/generate_content")
	}

	return s.flashAndRedirect(c, "Content generated successfully!", fmt.Sprintf("/preview/%d", item.ID))
}

var errInvalidContentType = errors.New("invalid content type")

func (s *Service) dispatchTextGeneration(ctx context.Context, artisan db.Artisan, form generateForm, prompt string) (string, error) {
	switch form.ContentType {
	case ContentTypeMarketingCopy:
		return s.generator.GenerateMarketingCopy(ctx, prompt, "general")
	case ContentTypeSocialCaption:
		return s.generator.GenerateSocialMediaPost(ctx, prompt, form.Platform)
	case ContentTypeCraftStory:
		return s.generator.GenerateCraftStory(ctx, prompt)
	case ContentTypeProductVisual:
		craftType := artisan.CraftType.String
		if craftType == "" {
			craftType = "handmade craft"
		}
		name := form.ProductName
		if name == "" {
			name = craftType + " product"
		}
		return s.generator.GenerateProductVisualDescription(ctx, name, craftType)
	case ContentTypeAdCopy:
		return s.generator.GenerateText(ctx, fmt.Sprintf("Write short, punchy advertising copy for a traditional craft product. Description: %s", prompt), 0)
	case ContentTypeAboutPress:
		return s.generator.GenerateText(ctx, fmt.Sprintf("Write an about-page press blurb introducing the artisan behind this craft. Description: %s", prompt), 0)
	default:
		return "", errInvalidContentType
	}
}

// composePrompt folds the artisan's profile and the submitted options into the
// craft description handed to the generation wrappers.
func composePrompt(artisan db.Artisan, form generateForm) string {
	craftType := artisan.CraftType.String
	if craftType == "" {
		craftType = "handmade craft"
	}

	var b strings.Builder
	b.WriteString(craftType)

	description := form.Description
	if description == "" {
		description = artisan.Bio.String
	}
	if description != "" {
		b.WriteString(" with description: ")
		b.WriteString(description)
	}
	if artisan.Materials.String != "" {
		b.WriteString(", made with ")
		b.WriteString(artisan.Materials.String)
	}
	if artisan.Location.String != "" {
		b.WriteString(", crafted in ")
		b.WriteString(artisan.Location.String)
	}

	if directives := styleDirectives(form); directives != "" {
		b.WriteString(". ")
		b.WriteString(directives)
	}

	return b.String()
}

func styleDirectives(form generateForm) string {
	var parts []string
	if form.Tone != "" {
		parts = append(parts, fmt.Sprintf("Write in a %s tone.", form.Tone))
	}
	if form.Language != "" && form.Language != "English" {
		parts = append(parts, fmt.Sprintf("Respond in %s.", form.Language))
	}
	switch form.Person {
	case "first":
		parts = append(parts, "Write in the first person as the artisan.")
	case "third":
		parts = append(parts, "Write in the third person.")
	}
	if form.IncludeQuote {
		parts = append(parts, "Include a short quote from the artisan.")
	}
	return strings.Join(parts, " ")
}

func (s *Service) handlePreview(c echo.Context) error {
	item, ok := s.ownedContent(c)
	if !ok {
		return nil
	}
	return s.render(c, "preview.html", map[string]any{
		"Title": "Preview",
		"Item":  item,
	})
}

func (s *Service) handlePreviewAction(c echo.Context) error {
	item, ok := s.ownedContent(c)
	if !ok {
		return nil
	}
	ctx := c.Request().Context()

	switch c.FormValue("action") {
	case "approve":
		// Idempotent: approving an approved draft is a no-op.
		if err := s.storage.Queries.ApproveGeneratedContent(ctx, item.ID); err != nil {
			slog.Error("failed to approve content", "error", err, "id", item.ID)
			return s.flashAndRedirect(c, "Failed to approve content", fmt.Sprintf("/preview/%d", item.ID))
		}
		return s.flashAndRedirect(c, "Content approved!", "/dashboard")
	case "edit":
		text := c.FormValue("generated_text")
		err := s.storage.Queries.UpdateGeneratedContentText(ctx, db.UpdateGeneratedContentTextParams{
			GeneratedText: nullString(text),
			ID:            item.ID,
		})
		if err != nil {
			slog.Error("failed to update content", "error", err, "id", item.ID)
			return s.flashAndRedirect(c, "Failed to save edits", fmt.Sprintf("/preview/%d", item.ID))
		}
		return s.flashAndRedirect(c, "Content updated", fmt.Sprintf("/preview/%d", item.ID))
	default:
		return s.flashAndRedirect(c, "Unknown action", fmt.Sprintf("/preview/%d", item.ID))
	}
}

func (s *Service) handleDeleteContent(c echo.Context) error {
	item, ok := s.ownedContent(c)
	if !ok {
		return nil
	}

	if err := s.storage.Queries.DeleteGeneratedContent(c.Request().Context(), item.ID); err != nil {
		slog.Error("failed to delete content", "error", err, "id", item.ID)
		return s.flashAndRedirect(c, "Failed to delete content", "/dashboard")
	}
	return s.flashAndRedirect(c, "Content deleted", "/dashboard")
}

// ownedContent loads the :id record and enforces that it belongs to the
// session user. On failure it writes the response itself and returns ok=false.
func (s *Service) ownedContent(c echo.Context) (db.GeneratedContent, bool) {
	userID, _ := auth.UserID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		_ = s.flashAndRedirect(c, "Content not found", "/dashboard")
		return db.GeneratedContent{}, false
	}

	item, err := s.storage.Queries.GetGeneratedContent(c.Request().Context(), id)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			slog.Error("failed to load content", "error", err, "id", id)
		}
		_ = s.flashAndRedirect(c, "Content not found", "/dashboard")
		return db.GeneratedContent{}, false
	}

	if item.ArtisanID != userID {
		_ = s.flashAndRedirect(c, "You do not have permission to access this content", "/dashboard")
		return db.GeneratedContent{}, false
	}

	return item, true
}
