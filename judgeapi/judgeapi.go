package judgeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/codegolf-live/backend/subm"
)

// Client talks to the judge's REST API: the submission list uses a bearer
// token, the raw source endpoint a session cookie. Failures here are
// ingestion failures; the caller's scheduler retries on its next tick.
type Client struct {
	httpClient *http.Client
	host       string
	apiToken   string
	sessionID  string
}

func NewClient(host string, apiToken string, sessionID string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		host:       host,
		apiToken:   apiToken,
		sessionID:  sessionID,
	}
}

// apiSubmission is the judge's wire shape for one submission.
type apiSubmission struct {
	ID       int      `json:"id"`
	User     string   `json:"user"`
	Date     string   `json:"date"`
	Language string   `json:"language"`
	Time     float64  `json:"time"`
	Memory   float64  `json:"memory"`
	Points   *float64 `json:"points"`
	Result   string   `json:"result"`
}

// ListSubmissions fetches the recent submissions for a problem.
func (c *Client) ListSubmissions(ctx context.Context, problemID string) ([]subm.Submission, error) {
	url := fmt.Sprintf("http://%s/api/v2/submissions?problem=%s", c.host, problemID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiToken)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("judge returned status %d listing submissions", res.StatusCode)
	}

	var body struct {
		Data struct {
			Objects []apiSubmission `json:"objects"`
		} `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode submission list: %w", err)
	}

	subms := make([]subm.Submission, 0, len(body.Data.Objects))
	for _, obj := range body.Data.Objects {
		date, err := time.Parse(time.RFC3339, obj.Date)
		if err != nil {
			return nil, fmt.Errorf("submission %d has bad date %q: %w", obj.ID, obj.Date, err)
		}
		subms = append(subms, subm.Submission{
			ID:       obj.ID,
			User:     obj.User,
			Date:     date,
			Language: obj.Language,
			Time:     obj.Time,
			Memory:   obj.Memory,
			Points:   obj.Points,
			Result:   obj.Result,
		})
	}
	return subms, nil
}

// FetchSource fetches the raw source text of one submission.
func (c *Client) FetchSource(ctx context.Context, submissionID int) (string, error) {
	url := fmt.Sprintf("http://%s/src/%d/raw", c.host, submissionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Cookie", "sessionid="+c.sessionID)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch source of submission %d: %w", submissionID, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("judge returned status %d for submission %d source", res.StatusCode, submissionID)
	}

	content, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read source of submission %d: %w", submissionID, err)
	}
	return string(content), nil
}
