// Package classifier is the HTTP client for the externally hosted inference
// service. The service owns the model; this client only ships an image and
// reads back the class label and confidence.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"acnescan/config"
	"acnescan/internal/domain"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.ClassifierConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Classify submits the image as multipart form data under the "file" field
// and decodes the {prediction, confidence} verdict.
func (c *Client) Classify(ctx context.Context, image []byte, filename string) (*domain.Classification, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart request: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, fmt.Errorf("failed to write image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/predict", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("classifier request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read classifier response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("classifier returned %d: %s: %w", resp.StatusCode, errResp.Error, domain.ErrDependency)
		}
		return nil, fmt.Errorf("classifier returned status %d: %w", resp.StatusCode, domain.ErrDependency)
	}

	var result domain.Classification
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to decode classifier response: %w", err)
	}

	if result.Prediction == "" {
		return nil, fmt.Errorf("classifier returned empty prediction: %w", domain.ErrDependency)
	}

	return &result, nil
}
