package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// promptRecordingClient spins up a server that records the last prompt sent
// and always succeeds.
func promptRecordingClient(t *testing.T) (*Client, *string) {
	t.Helper()
	var lastPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		lastPrompt = req.Contents[0].Parts[0].Text
		_, _ = w.Write([]byte(textSuccessBody("ok")))
	}))
	t.Cleanup(server.Close)

	client := NewClient(apiKeyCreds(), "", t.TempDir(),
		WithTextBaseURL(server.URL),
		WithModels("model-a"))
	return client, &lastPrompt
}

func TestGenerateMarketingCopyDefaultsAudience(t *testing.T) {
	client, lastPrompt := promptRecordingClient(t)

	_, err := client.GenerateMarketingCopy(context.Background(), "hand-thrown stoneware mugs", "")
	require.NoError(t, err)

	assert.Contains(t, *lastPrompt, "hand-thrown stoneware mugs")
	assert.Contains(t, *lastPrompt, "Target audience: general")
}

func TestGenerateSocialMediaPostDefaultsPlatform(t *testing.T) {
	client, lastPrompt := promptRecordingClient(t)

	_, err := client.GenerateSocialMediaPost(context.Background(), "woven wall hangings", "")
	require.NoError(t, err)

	assert.Contains(t, *lastPrompt, "Create a Instagram post")
	assert.Contains(t, *lastPrompt, "woven wall hangings")
}

func TestGenerateSocialMediaPostUsesGivenPlatform(t *testing.T) {
	client, lastPrompt := promptRecordingClient(t)

	_, err := client.GenerateSocialMediaPost(context.Background(), "woven wall hangings", "Facebook")
	require.NoError(t, err)

	assert.Contains(t, *lastPrompt, "Create a Facebook post")
}

func TestGenerateCraftStoryPrompt(t *testing.T) {
	client, lastPrompt := promptRecordingClient(t)

	_, err := client.GenerateCraftStory(context.Background(), "third-generation basket weaving")
	require.NoError(t, err)

	assert.Contains(t, *lastPrompt, "third-generation basket weaving")
	assert.Contains(t, *lastPrompt, "cultural heritage")
}

func TestGenerateProductVisualDescriptionPrompt(t *testing.T) {
	client, lastPrompt := promptRecordingClient(t)

	_, err := client.GenerateProductVisualDescription(context.Background(), "Harvest Bowl", "Pottery")
	require.NoError(t, err)

	assert.Contains(t, *lastPrompt, "'Harvest Bowl'")
	assert.Contains(t, *lastPrompt, "Pottery product")
}

func TestPromptWrappersPropagateErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"rejected","status":"INVALID_ARGUMENT"}}`))
	}))
	defer server.Close()

	client := NewClient(apiKeyCreds(), "", t.TempDir(),
		WithTextBaseURL(server.URL),
		WithModels("model-a"))

	_, err := client.GenerateCraftStory(context.Background(), "anything")
	assert.Error(t, err)
}
