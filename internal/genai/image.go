package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/oklog/ulid/v2"
)

const imageModel = "imagen-3.0-generate-001"

// ErrImageCredentials means the client only holds an API key. The Vertex
// prediction endpoint rejects API keys, so the check happens before any
// network call.
var ErrImageCredentials = errors.New("image generation requires service-account credentials")

type imagePredictRequest struct {
	Instances  []imageInstance  `json:"instances"`
	Parameters *imageParameters `json:"parameters,omitempty"`
}

type imageInstance struct {
	Prompt string `json:"prompt"`
}

type imageParameters struct {
	SampleCount int    `json:"sampleCount"`
	AspectRatio string `json:"aspectRatio,omitempty"`
}

type imagePredictResponse struct {
	Predictions []imagePrediction `json:"predictions"`
	Error       *apiError         `json:"error,omitempty"`
}

type imagePrediction struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
	MimeType           string `json:"mimeType"`
}

// GenerateImage renders the prompt through the Vertex Imagen endpoint, writes
// the result under the generated-images directory and returns the filename.
func (c *Client) GenerateImage(ctx context.Context, prompt, aspectRatio string) (string, error) {
	if c.creds == nil || !c.creds.CanGenerateImages() {
		return "", ErrImageCredentials
	}
	if aspectRatio == "" {
		aspectRatio = "1:1"
	}

	req := imagePredictRequest{
		Instances: []imageInstance{{Prompt: prompt}},
		Parameters: &imageParameters{
			SampleCount: 1,
			AspectRatio: aspectRatio,
		},
	}

	jsonBody, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/projects/%s/locations/%s/publishers/google/models/%s:predict",
		c.vertexBaseURL, c.creds.ProjectID, c.location, imageModel)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	token, err := c.creds.TokenSource.Token()
	if err != nil {
		return "", fmt.Errorf("fetch access token: %w", err)
	}
	token.SetAuthHeader(httpReq)

	slog.Debug("calling image generation", "model", imageModel, "aspect_ratio", aspectRatio)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &APICallError{Model: imageModel, HTTPStatus: resp.StatusCode, Message: string(body)}
	}

	var predictResp imagePredictResponse
	if err := json.Unmarshal(body, &predictResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if predictResp.Error != nil {
		return "", &APICallError{
			Model:      imageModel,
			HTTPStatus: resp.StatusCode,
			Status:     predictResp.Error.Status,
			Message:    predictResp.Error.Message,
		}
	}
	if len(predictResp.Predictions) == 0 {
		return "", fmt.Errorf("no image in API response")
	}

	imageData, err := base64.StdEncoding.DecodeString(predictResp.Predictions[0].BytesBase64Encoded)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	if err := os.MkdirAll(c.imageDir, 0755); err != nil {
		return "", fmt.Errorf("create image dir: %w", err)
	}

	filename := ulid.Make().String() + ".png"
	outputPath := filepath.Join(c.imageDir, filename)
	if err := os.WriteFile(outputPath, imageData, 0644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}

	slog.Info("generated image", "filename", filename, "bytes", len(imageData))
	return filename, nil
}
