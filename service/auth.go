package service

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/craftally/studio/internal/auth"
	"github.com/craftally/studio/internal/session"
	"github.com/craftally/studio/storage/db"
	"github.com/labstack/echo/v4"
)

func (s *Service) handleRegisterPage(c echo.Context) error {
	return s.render(c, "register.html", map[string]any{"Title": "Register"})
}

func (s *Service) handleRegister(c echo.Context) error {
	username := c.FormValue("username")
	email := c.FormValue("email")
	password := c.FormValue("password")
	if username == "" || email == "" || password == "" {
		return s.flashAndRedirect(c, "Username, email and password are required", "/register")
	}

	ctx := c.Request().Context()

	_, err := s.storage.Queries.GetArtisanByUsernameOrEmail(ctx, db.GetArtisanByUsernameOrEmailParams{
		Username: username,
		Email:    email,
	})
	if err == nil {
		return s.flashAndRedirect(c, "Username or email already exists", "/register")
	}
	if !errors.Is(err, sql.ErrNoRows) {
		slog.Error("failed to check existing artisan", "error", err)
		return s.flashAndRedirect(c, "Registration failed, please try again", "/register")
	}

	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		return s.flashAndRedirect(c, "Registration failed, please try again", "/register")
	}

	artisan, err := s.storage.Queries.CreateArtisan(ctx, db.CreateArtisanParams{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     nullString(c.FormValue("full_name")),
		CraftType:    nullString(c.FormValue("craft_type")),
		Location:     nullString(c.FormValue("location")),
		Bio:          nullString(c.FormValue("bio")),
		Materials:    nullString(c.FormValue("materials")),
	})
	if err != nil {
		slog.Error("failed to create artisan", "error", err, "username", username)
		return s.flashAndRedirect(c, "Username or email already exists", "/register")
	}

	if err := s.sessions.CreateSession(c, sessionUser(artisan)); err != nil {
		slog.Error("failed to create session", "error", err)
		return s.flashAndRedirect(c, "Registration succeeded, please log in", "/login")
	}

	slog.Info("artisan registered", "id", artisan.ID, "username", artisan.Username)
	return s.flashAndRedirect(c, "Registration successful!", "/dashboard")
}

func (s *Service) handleLoginPage(c echo.Context) error {
	return s.render(c, "login.html", map[string]any{"Title": "Login"})
}

func (s *Service) handleLogin(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	ctx := c.Request().Context()

	artisan, err := s.storage.Queries.GetArtisanByUsername(ctx, username)
	if err != nil || !auth.CheckPassword(artisan.PasswordHash, password) {
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			slog.Error("failed to look up artisan", "error", err)
		}
		_ = s.sessions.Flash(c, "Invalid username or password")
		return s.render(c, "login.html", map[string]any{"Title": "Login"})
	}

	if err := s.sessions.CreateSession(c, sessionUser(artisan)); err != nil {
		slog.Error("failed to create session", "error", err)
		return s.flashAndRedirect(c, "Login failed, please try again", "/login")
	}

	return s.flashAndRedirect(c, "Login successful!", "/dashboard")
}

func (s *Service) handleLogout(c echo.Context) error {
	if err := s.sessions.Logout(c, "Logged out successfully"); err != nil {
		slog.Error("failed to clear session", "error", err)
	}
	return c.Redirect(http.StatusFound, "/login")
}

func sessionUser(artisan db.Artisan) *session.UserData {
	return &session.UserData{
		ID:        artisan.ID,
		Username:  artisan.Username,
		Email:     artisan.Email,
		FullName:  artisan.FullName.String,
		CraftType: artisan.CraftType.String,
	}
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}
