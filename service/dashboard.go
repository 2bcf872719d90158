package service

import (
	"log/slog"

	"github.com/craftally/studio/internal/auth"
	"github.com/labstack/echo/v4"
)

func (s *Service) handleDashboard(c echo.Context) error {
	userID, _ := auth.UserID(c)
	ctx := c.Request().Context()

	artisan, err := s.storage.Queries.GetArtisan(ctx, userID)
	if err != nil {
		slog.Error("failed to load artisan", "error", err, "id", userID)
		return s.flashAndRedirect(c, "Please log in again", "/logout")
	}

	products, err := s.storage.Queries.ListProductsByArtisan(ctx, userID)
	if err != nil {
		slog.Error("failed to list products", "error", err, "artisan_id", userID)
	}

	// The dashboard only surfaces approved drafts; pending ones stay on the
	// preview screen until reviewed.
	content, err := s.storage.Queries.ListApprovedContentByArtisan(ctx, userID)
	if err != nil {
		slog.Error("failed to list approved content", "error", err, "artisan_id", userID)
	}

	return s.render(c, "dashboard.html", map[string]any{
		"Title":    "Dashboard",
		"Artisan":  artisan,
		"Products": products,
		"Content":  content,
	})
}
