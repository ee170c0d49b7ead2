package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAssetHostNotConfigured = errors.New("asset host is not configured")
	ErrAssetUploadFailed      = errors.New("asset host rejected the upload")
)

// UploadedAsset describes a binary stored on the asset host.
type UploadedAsset struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// AssetClient talks to the external asset host over HTTP. The host owns all
// binary storage; this API only keeps the returned URLs.
type AssetClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewAssetClient creates an AssetClient for the given host.
func NewAssetClient(baseURL, apiKey string) *AssetClient {
	return &AssetClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Upload stores the image bytes remotely and returns the public URL.
func (c *AssetClient) Upload(ctx context.Context, data []byte, contentType string) (*UploadedAsset, error) {
	if c == nil || c.baseURL == "" {
		return nil, ErrAssetHostNotConfigured
	}

	publicID := "avatar-" + uuid.NewString()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, publicID))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	if err := writer.WriteField("public_id", publicID); err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/assets", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("asset host unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("%w: status %d", ErrAssetUploadFailed, resp.StatusCode)
	}

	var asset UploadedAsset
	if err := json.NewDecoder(resp.Body).Decode(&asset); err != nil {
		return nil, fmt.Errorf("failed to decode asset host response: %w", err)
	}
	if asset.URL == "" {
		return nil, ErrAssetUploadFailed
	}
	return &asset, nil
}

// Delete removes a stored asset by its public ID.
func (c *AssetClient) Delete(ctx context.Context, publicID string) error {
	if c == nil || c.baseURL == "" {
		return ErrAssetHostNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/assets/"+publicID, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("asset host unreachable: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("asset host delete failed: status %d", resp.StatusCode)
	}
	return nil
}

// PublicIDFromURL derives the asset's public ID from its stored URL.
func PublicIDFromURL(rawURL string) string {
	base := path.Base(rawURL)
	if base == "." || base == "/" {
		return ""
	}
	if idx := strings.IndexByte(base, '.'); idx > 0 {
		base = base[:idx]
	}
	return base
}
