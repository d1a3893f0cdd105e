// Package clients provides HTTP clients for the platform API, used by the
// course player
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/coursedeck/backend/internal/models"
)

// defaultTimeout bounds collaborator calls when no client is supplied
const defaultTimeout = 15 * time.Second

// CourseClient fetches course payloads from the course data endpoint
type CourseClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewCourseClient creates a course client for the given API base URL.
// "token" is the viewer's access token; "httpClient" may be nil.
func NewCourseClient(baseURL, token string, httpClient *http.Client) *CourseClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &CourseClient{
		baseURL:    baseURL,
		token:      token,
		httpClient: httpClient,
	}
}

// GetCourse retrieves the course payload with ordered sections and lessons
func (c *CourseClient) GetCourse(ctx context.Context, courseID string) (*models.CourseDetailResponse, error) {
	reqURL := fmt.Sprintf("%s/api/v1/courses/%s", c.baseURL, url.PathEscape(courseID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch course: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("course not found")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching course", resp.StatusCode)
	}

	var course models.CourseDetailResponse
	if err := json.NewDecoder(resp.Body).Decode(&course); err != nil {
		return nil, fmt.Errorf("failed to decode course payload: %w", err)
	}

	return &course, nil
}
