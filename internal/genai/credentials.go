package genai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// Credentials is the key material resolved once at startup and passed
// explicitly to every generation call. Exactly one mode is active: a
// service-account token source, a bare API key (text generation only), or
// ambient default credentials.
type Credentials struct {
	ProjectID   string
	APIKey      string
	TokenSource oauth2.TokenSource
}

// CanGenerateImages reports whether the credentials carry OAuth token material.
// An API key alone is not accepted by the Vertex image endpoint.
func (c *Credentials) CanGenerateImages() bool {
	return c != nil && c.TokenSource != nil
}

type CredentialsConfig struct {
	ProjectID       string
	CredentialsJSON string // service-account key, raw JSON or base64-encoded
	CredentialsFile string
	APIKey          string
}

// ResolveCredentials picks the first configured credential source: inline
// service-account JSON, a key file, an API key, then ambient default
// credentials. Malformed key material fails resolution; the caller logs the
// error and runs without a generation client.
func ResolveCredentials(ctx context.Context, cfg CredentialsConfig) (*Credentials, error) {
	if cfg.CredentialsJSON != "" {
		data, err := decodeServiceAccountJSON(cfg.CredentialsJSON)
		if err != nil {
			return nil, err
		}
		return credentialsFromKey(ctx, cfg.ProjectID, data)
	}

	if cfg.CredentialsFile != "" {
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read credentials file: %w", err)
		}
		return credentialsFromKey(ctx, cfg.ProjectID, data)
	}

	if cfg.APIKey != "" {
		return &Credentials{ProjectID: cfg.ProjectID, APIKey: cfg.APIKey}, nil
	}

	creds, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("find default credentials: %w", err)
	}
	projectID := cfg.ProjectID
	if projectID == "" {
		projectID = creds.ProjectID
	}
	return &Credentials{ProjectID: projectID, TokenSource: creds.TokenSource}, nil
}

// decodeServiceAccountJSON accepts the key either verbatim or base64-encoded,
// since deployment environments vary in which form they can carry.
func decodeServiceAccountJSON(value string) ([]byte, error) {
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "{") {
		return []byte(trimmed), nil
	}

	data, err := base64.StdEncoding.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("decode base64 credentials: %w", err)
	}
	return data, nil
}

func credentialsFromKey(ctx context.Context, projectID string, key []byte) (*Credentials, error) {
	jwtConfig, err := google.JWTConfigFromJSON(key, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account key: %w", err)
	}

	if projectID == "" {
		var sa struct {
			ProjectID string `json:"project_id"`
		}
		if err := json.Unmarshal(key, &sa); err == nil {
			projectID = sa.ProjectID
		}
	}

	return &Credentials{
		ProjectID:   projectID,
		TokenSource: jwtConfig.TokenSource(ctx),
	}, nil
}
