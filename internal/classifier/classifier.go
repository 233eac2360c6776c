// Package classifier is the client side of the external text-classification
// service that scores inputs as phishing or legitimate.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	ErrUnavailable     = errors.New("classifier unavailable")
	ErrInvalidResponse = errors.New("invalid classifier response")
)

// Label values returned by the models.
const (
	LabelLegitimate = 0
	LabelPhishing   = 1
)

// Prediction is a model verdict. Score is the model's confidence in Label.
type Prediction struct {
	Label int
	Score float64
}

// Phishing reports whether the model labelled the input as phishing.
func (p Prediction) Phishing() bool { return p.Label == LabelPhishing }

// Classifier scores text with the named model, truncating to maxLen tokens.
type Classifier interface {
	Predict(ctx context.Context, model, text string, maxLen int) (*Prediction, error)
}

type predictRequest struct {
	Text      string `json:"text"`
	MaxLength int    `json:"max_length"`
}

type predictResponse struct {
	Label *int     `json:"label"`
	Score *float64 `json:"score"`
}

// HTTPClassifier calls POST {endpoint}/v1/models/{model}:predict.
type HTTPClassifier struct {
	endpoint string
	client   *http.Client
}

// NewHTTPClassifier returns a client for endpoint; timeout bounds each call.
func NewHTTPClassifier(endpoint string, timeout time.Duration) *HTTPClassifier {
	return &HTTPClassifier{
		endpoint: strings.TrimRight(endpoint, "/"),
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClassifier) predictURL(model string) string {
	return c.endpoint + "/v1/models/" + url.PathEscape(model) + ":predict"
}

// Predict sends text to the model. Transport failures and 503 responses are
// reported as ErrUnavailable; malformed or out-of-range answers as
// ErrInvalidResponse.
func (c *HTTPClassifier) Predict(ctx context.Context, model, text string, maxLen int) (*Prediction, error) {
	body, err := json.Marshal(predictRequest{Text: text, MaxLength: maxLen})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.predictURL(model), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusServiceUnavailable {
		return nil, fmt.Errorf("%w: model %q returned %s", ErrUnavailable, model, resp.Status)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("model %q returned %s: %s", model, resp.Status, strings.TrimSpace(string(msg)))
	}

	var pr predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponse, err)
	}
	if pr.Label == nil || pr.Score == nil {
		return nil, fmt.Errorf("%w: missing label or score", ErrInvalidResponse)
	}
	if *pr.Label != LabelLegitimate && *pr.Label != LabelPhishing {
		return nil, fmt.Errorf("%w: label %d", ErrInvalidResponse, *pr.Label)
	}
	if *pr.Score < 0 || *pr.Score > 1 {
		return nil, fmt.Errorf("%w: score %v out of [0,1]", ErrInvalidResponse, *pr.Score)
	}

	return &Prediction{Label: *pr.Label, Score: *pr.Score}, nil
}
