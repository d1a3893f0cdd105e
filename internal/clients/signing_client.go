package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/coursedeck/backend/internal/models"
)

// SigningClient exchanges storage keys for signed URLs via the media
// sign-url endpoint. It satisfies the player's Signer interface.
type SigningClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewSigningClient creates a signing client for the given API base URL.
// "token" is the viewer's access token; "httpClient" may be nil.
func NewSigningClient(baseURL, token string, httpClient *http.Client) *SigningClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &SigningClient{
		baseURL:    baseURL,
		token:      token,
		httpClient: httpClient,
	}
}

// SignURL requests a time-limited playable URL for the given storage key
func (c *SigningClient) SignURL(ctx context.Context, storageKey string) (string, error) {
	reqURL := fmt.Sprintf("%s/api/v1/media/sign-url?key=%s", c.baseURL, url.QueryEscape(storageKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to sign url: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d signing url", resp.StatusCode)
	}

	var signed models.SignURLResponse
	if err := json.NewDecoder(resp.Body).Decode(&signed); err != nil {
		return "", fmt.Errorf("failed to decode signing response: %w", err)
	}
	if signed.SignedURL == "" {
		return "", fmt.Errorf("signing response contained no url")
	}

	return signed.SignedURL, nil
}
