package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/craftally/studio/internal/genai"
	"github.com/craftally/studio/storage/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertTestContent(t *testing.T, svc *Service, artisanID int64, contentType, text string) db.GeneratedContent {
	t.Helper()

	item, err := svc.storage.Queries.CreateGeneratedContent(context.Background(), db.CreateGeneratedContentParams{
		ArtisanID:     artisanID,
		ContentType:   contentType,
		Prompt:        sql.NullString{String: "test prompt", Valid: true},
		GeneratedText: sql.NullString{String: text, Valid: true},
		IncludeQuote:  1,
	})
	require.NoError(t, err)
	return item
}

func TestGeneratedContentStartsPending(t *testing.T) {
	e, svc, _ := setupTestEcho(t)
	createTestArtisan(t, svc, "alice", "alice@example.com", "secret123")
	cookies := login(t, e, "alice", "secret123")

	for _, contentType := range []string{
		ContentTypeMarketingCopy,
		ContentTypeSocialCaption,
		ContentTypeCraftStory,
		ContentTypeProductVisual,
		ContentTypeAdCopy,
		ContentTypeAboutPress,
	} {
		t.Run(contentType, func(t *testing.T) {
			rec := postForm(e, "/generate_content", url.Values{
				"content_type": {contentType},
				"description":  {"hand-thrown stoneware mugs"},
			}, cookies)

			require.Equal(t, http.StatusFound, rec.Code)
			assert.Contains(t, rec.Header().Get("Location"), "/preview/")
		})
	}

	items, err := svc.storage.Queries.ListGeneratedContentByArtisan(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 6)
	for _, item := range items {
		assert.Equal(t, StatusPending, item.ApprovalStatus, "new rows always start pending")
		assert.True(t, item.GeneratedText.Valid)
		assert.False(t, item.GeneratedImageUrl.Valid)
	}
}

func TestGenerateContentInvalidTypeRejected(t *testing.T) {
	e, svc, _ := setupTestEcho(t)
	createTestArtisan(t, svc, "alice", "alice@example.com", "secret123")
	cookies := login(t, e, "alice", "secret123")

	rec := postForm(e, "/generate_content", url.Values{
		"content_type": {"haiku"},
		"description":  {"something"},
	}, cookies)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/generate_content", rec.Header().Get("Location"))

	items, err := svc.storage.Queries.ListGeneratedContentByArtisan(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTextGenerationErrorStoredOnDraft(t *testing.T) {
	e, svc, generator := setupTestEcho(t)
	createTestArtisan(t, svc, "alice", "alice@example.com", "secret123")
	cookies := login(t, e, "alice", "secret123")

	generator.textErr = errors.New("quota exceeded")

	rec := postForm(e, "/generate_content", url.Values{
		"content_type": {ContentTypeMarketingCopy},
		"description":  {"mugs"},
	}, cookies)
	require.Equal(t, http.StatusFound, rec.Code)

	items, err := svc.storage.Queries.ListGeneratedContentByArtisan(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Contains(t, items[0].GeneratedText.String, "Error generating text: quota exceeded")
	assert.Equal(t, StatusPending, items[0].ApprovalStatus)
}

func TestImageGenerationWritesImageRecord(t *testing.T) {
	e, svc, _ := setupTestEcho(t)
	createTestArtisan(t, svc, "alice", "alice@example.com", "secret123")
	cookies := login(t, e, "alice", "secret123")

	rec := postForm(e, "/generate_content", url.Values{
		"content_type": {ContentTypeImage},
		"description":  {"a glazed stoneware mug on a wooden table"},
	}, cookies)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Contains(t, rec.Header().Get("Location"), "/preview/")

	items, err := svc.storage.Queries.ListGeneratedContentByArtisan(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "stub-image.png", items[0].GeneratedImageUrl.String)
	assert.False(t, items[0].GeneratedText.Valid, "image rows carry no text")
	assert.Equal(t, StatusPending, items[0].ApprovalStatus)
}

func TestImageGenerationWithoutServiceAccountFails(t *testing.T) {
	e, svc, generator := setupTestEcho(t)
	createTestArtisan(t, svc, "alice", "alice@example.com", "secret123")
	cookies := login(t, e, "alice", "secret123")

	generator.imageErr = genai.ErrImageCredentials

	rec := postForm(e, "/generate_content", url.Values{
		"content_type": {ContentTypeImage},
		"description":  {"a mug"},
	}, cookies)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/generate_content", rec.Header().Get("Location"))

	items, err := svc.storage.Queries.ListGeneratedContentByArtisan(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, items, "failed image generation must not persist a row")
}

func TestApproveIsIdempotent(t *testing.T) {
	e, svc, _ := setupTestEcho(t)
	artisan := createTestArtisan(t, svc, "alice", "alice@example.com", "secret123")
	cookies := login(t, e, "alice", "secret123")
	item := insertTestContent(t, svc, artisan.ID, ContentTypeMarketingCopy, "draft text")

	require.Equal(t, StatusPending, item.ApprovalStatus)

	for i := 0; i < 2; i++ {
		rec := postForm(e, fmt.Sprintf("/preview/%d", item.ID), url.Values{
			"action": {"approve"},
		}, cookies)
		assert.Equal(t, http.StatusFound, rec.Code, "approve attempt %d", i+1)

		got, err := svc.storage.Queries.GetGeneratedContent(context.Background(), item.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusApproved, got.ApprovalStatus)
	}
}

func TestEditReplacesTextWithoutChangingStatus(t *testing.T) {
	e, svc, _ := setupTestEcho(t)
	artisan := createTestArtisan(t, svc, "alice", "alice@example.com", "secret123")
	cookies := login(t, e, "alice", "secret123")
	item := insertTestContent(t, svc, artisan.ID, ContentTypeCraftStory, "original text")

	rec := postForm(e, fmt.Sprintf("/preview/%d", item.ID), url.Values{
		"action":         {"edit"},
		"generated_text": {"polished text"},
	}, cookies)
	assert.Equal(t, http.StatusFound, rec.Code)

	got, err := svc.storage.Queries.GetGeneratedContent(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "polished text", got.GeneratedText.String)
	assert.Equal(t, StatusPending, got.ApprovalStatus, "edit must not change status")
}

func TestDeleteByNonOwnerRefused(t *testing.T) {
	e, svc, _ := setupTestEcho(t)
	alice := createTestArtisan(t, svc, "alice", "alice@example.com", "secret123")
	createTestArtisan(t, svc, "bob", "bob@example.com", "hunter22")
	item := insertTestContent(t, svc, alice.ID, ContentTypeMarketingCopy, "alice's draft")

	bobCookies := login(t, e, "bob", "hunter22")
	rec := postForm(e, fmt.Sprintf("/delete_content/%d", item.ID), nil, bobCookies)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	got, err := svc.storage.Queries.GetGeneratedContent(context.Background(), item.ID)
	require.NoError(t, err, "record must be unchanged")
	assert.Equal(t, "alice's draft", got.GeneratedText.String)
}

func TestDeleteByOwnerRemovesRecord(t *testing.T) {
	e, svc, _ := setupTestEcho(t)
	alice := createTestArtisan(t, svc, "alice", "alice@example.com", "secret123")
	item := insertTestContent(t, svc, alice.ID, ContentTypeMarketingCopy, "draft")

	cookies := login(t, e, "alice", "secret123")
	rec := postForm(e, fmt.Sprintf("/delete_content/%d", item.ID), nil, cookies)
	assert.Equal(t, http.StatusFound, rec.Code)

	_, err := svc.storage.Queries.GetGeneratedContent(context.Background(), item.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestPreviewHidesOtherArtisansContent(t *testing.T) {
	e, svc, _ := setupTestEcho(t)
	alice := createTestArtisan(t, svc, "alice", "alice@example.com", "secret123")
	createTestArtisan(t, svc, "bob", "bob@example.com", "hunter22")
	item := insertTestContent(t, svc, alice.ID, ContentTypeMarketingCopy, "private draft")

	bobCookies := login(t, e, "bob", "hunter22")
	rec := getPage(e, fmt.Sprintf("/preview/%d", item.ID), bobCookies)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestDashboardShowsOnlyApprovedContent(t *testing.T) {
	e, svc, _ := setupTestEcho(t)
	alice := createTestArtisan(t, svc, "alice", "alice@example.com", "secret123")
	insertTestContent(t, svc, alice.ID, ContentTypeMarketingCopy, "still a pending draft")
	approved := insertTestContent(t, svc, alice.ID, ContentTypeCraftStory, "an approved story")
	require.NoError(t, svc.storage.Queries.ApproveGeneratedContent(context.Background(), approved.ID))

	cookies := login(t, e, "alice", "secret123")
	rec := getPage(e, "/dashboard", cookies)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "an approved story")
	assert.NotContains(t, body, "still a pending draft")
}

func TestPreviewShowsPendingContent(t *testing.T) {
	e, svc, _ := setupTestEcho(t)
	alice := createTestArtisan(t, svc, "alice", "alice@example.com", "secret123")
	item := insertTestContent(t, svc, alice.ID, ContentTypeMarketingCopy, "pending draft body")

	cookies := login(t, e, "alice", "secret123")
	rec := getPage(e, fmt.Sprintf("/preview/%d", item.ID), cookies)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pending draft body")
}
