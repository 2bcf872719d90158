package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJSON(t *testing.T, body []byte) map[string]string {
	t.Helper()
	var out map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	return out
}

func TestAPIMissingFieldsReturn400(t *testing.T) {
	e, _, _ := setupTestEcho(t)

	endpoints := []string{
		"/api/generate_marketing_copy",
		"/api/generate_social_media_post",
		"/api/generate_craft_story",
		"/api/generate_product_visual",
	}

	for _, endpoint := range endpoints {
		t.Run(endpoint, func(t *testing.T) {
			// craft_type present, description missing
			rec := postForm(e, endpoint, url.Values{
				"craft_type": {"Pottery"},
			}, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code, "must never be 200 without description")
			out := decodeJSON(t, rec.Body.Bytes())
			assert.Equal(t, "Missing craft_type or description", out["error"])

			// description present, craft_type missing
			rec = postForm(e, endpoint, url.Values{
				"description": {"Handmade pottery with traditional designs"},
			}, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			out = decodeJSON(t, rec.Body.Bytes())
			assert.Contains(t, out, "error")
		})
	}
}

func TestAPIGenerateMarketingCopy(t *testing.T) {
	e, _, _ := setupTestEcho(t)

	rec := postForm(e, "/api/generate_marketing_copy", url.Values{
		"craft_type":  {"Pottery"},
		"description": {"Handmade pottery with traditional designs"},
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeJSON(t, rec.Body.Bytes())
	assert.NotEmpty(t, out["marketing_copy"])
	assert.Contains(t, out["marketing_copy"], "Pottery")
}

func TestAPIGenerateSocialMediaPostDefaultsToInstagram(t *testing.T) {
	e, _, generator := setupTestEcho(t)

	rec := postForm(e, "/api/generate_social_media_post", url.Values{
		"craft_type":  {"Weaving"},
		"description": {"Hand-dyed wool tapestries"},
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeJSON(t, rec.Body.Bytes())
	assert.NotEmpty(t, out["social_media_post"])
	assert.Contains(t, generator.lastPrompt, "Instagram")
}

func TestAPIGenerateCraftStory(t *testing.T) {
	e, _, _ := setupTestEcho(t)

	rec := postForm(e, "/api/generate_craft_story", url.Values{
		"craft_type":  {"Woodwork"},
		"description": {"Carved bowls from reclaimed oak"},
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeJSON(t, rec.Body.Bytes())
	assert.NotEmpty(t, out["craft_story"])
}

func TestAPIGenerateProductVisual(t *testing.T) {
	e, _, generator := setupTestEcho(t)

	rec := postForm(e, "/api/generate_product_visual", url.Values{
		"craft_type":  {"Glassblowing"},
		"description": {"Recycled glass vases"},
	}, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeJSON(t, rec.Body.Bytes())
	assert.NotEmpty(t, out["product_visual_description"])
	assert.Contains(t, generator.lastPrompt, "Glassblowing product")
}

func TestAPIGenerationFailureEmbedsReadableError(t *testing.T) {
	e, _, generator := setupTestEcho(t)
	generator.textErr = errors.New("backend unavailable")

	rec := postForm(e, "/api/generate_marketing_copy", url.Values{
		"craft_type":  {"Pottery"},
		"description": {"Handmade pottery"},
	}, nil)

	// Remote failures surface as text, not as HTTP errors
	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeJSON(t, rec.Body.Bytes())
	assert.Contains(t, out["marketing_copy"], "Error generating text: backend unavailable")
}
