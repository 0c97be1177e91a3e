package courses

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jeichenberger88/golf-tracker/internal/storage/models"
)

const (
	remoteRateDelay      = 200 * time.Millisecond
	remoteRequestTimeout = 10 * time.Second
)

// RemoteClient queries an external course catalog over HTTP with a
// bearer credential. It is best-effort by contract: an unconfigured
// credential yields no results and no error, and callers are expected
// to treat transport errors as an empty contribution.
type RemoteClient struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
}

// NewRemoteClient creates a remote catalog client. An empty apiKey
// disables remote lookups; a non-positive timeout falls back to the
// default.
func NewRemoteClient(baseURL, apiKey string, timeout time.Duration) *RemoteClient {
	if timeout <= 0 {
		timeout = remoteRequestTimeout
	}
	return &RemoteClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(remoteRateDelay), 1),
	}
}

// Enabled reports whether the client has a credential configured.
func (c *RemoteClient) Enabled() bool {
	return c.apiKey != "" && c.baseURL != ""
}

// remoteCourse is the course record shape returned by the catalog API.
type remoteCourse struct {
	ID      string   `json:"id"`
	Name    string   `json:"course_name"`
	Club    string   `json:"club_name"`
	City    string   `json:"city"`
	State   string   `json:"state"`
	Country string   `json:"country"`
	Par     int      `json:"par"`
	Yardage *int     `json:"yardage"`
	Rating  *float64 `json:"rating"`
	Slope   *int     `json:"slope"`
}

// Search queries the remote catalog by course name. Without a
// configured credential it returns no results and no error.
func (c *RemoteClient) Search(ctx context.Context, query string) ([]models.Course, error) {
	if !c.Enabled() {
		return nil, nil
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := fmt.Sprintf("%s/courses?name=%s", c.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("course catalog request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("course catalog returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var payload struct {
		Courses []remoteCourse `json:"courses"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse catalog response: %w", err)
	}

	results := make([]models.Course, 0, len(payload.Courses))
	for _, rc := range payload.Courses {
		results = append(results, rc.toCourse())
	}
	return results, nil
}

// FindByID fetches a single course record by ID.
func (c *RemoteClient) FindByID(ctx context.Context, id string) (*models.Course, error) {
	if !c.Enabled() {
		return nil, nil
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	reqURL := fmt.Sprintf("%s/courses/%s", c.baseURL, url.PathEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("course catalog request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("course catalog returned HTTP %d", resp.StatusCode)
	}

	var rc remoteCourse
	if err := json.NewDecoder(resp.Body).Decode(&rc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog response: %w", err)
	}
	course := rc.toCourse()
	return &course, nil
}

func (rc remoteCourse) toCourse() models.Course {
	name := rc.Name
	if name == "" {
		name = rc.Club
	}

	location := rc.Country
	if rc.City != "" {
		location = rc.City
		if rc.State != "" {
			location += ", " + rc.State
		}
	}

	course := models.Course{
		ID:       rc.ID,
		Name:     name,
		Location: location,
		Par:      rc.Par,
		Source:   models.CourseSourceRemote,
	}

	// Remote records carry at most one set of tee data; expose it under
	// the default tees.
	if rc.Yardage != nil || rc.Rating != nil || rc.Slope != nil {
		info := models.TeeInfo{}
		if rc.Yardage != nil {
			info.Yardage = *rc.Yardage
		}
		if rc.Rating != nil {
			info.Rating = *rc.Rating
		}
		if rc.Slope != nil {
			info.Slope = *rc.Slope
		}
		course.Tees = map[string]models.TeeInfo{models.TeesWhite: info}
	}

	return course
}
