package intent

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"campus-tickets/internal/pkg/config"
	"campus-tickets/internal/pkg/errs"
)

type Intent string

const (
	IntentProposeBooking Intent = "propose_booking"
	IntentShowEvents     Intent = "show_events"
	IntentCancel         Intent = "cancel"
	IntentUnknown        Intent = "unknown"
)

// Result is the resolver's best-effort structured guess for an utterance.
// The event name may be empty or inaccurate; quantity defaults to 1.
type Result struct {
	Intent    Intent `json:"intent"`
	EventName string `json:"eventName"`
	Quantity  int    `json:"quantity"`
}

const maxResponseBytes = 1 << 20

// Client calls the external language-understanding service. Its response is
// treated as untrusted free text that merely contains a JSON object; any
// transport failure, timeout or unparseable payload degrades to
// ErrResolverUnavailable rather than propagating a raw fault.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.ResolverConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (c *Client) Resolve(ctx context.Context, utterance string) (*Result, error) {
	payload, err := json.Marshal(map[string]string{"utterance": utterance})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrResolverUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/llm/parse", bytes.NewReader(payload))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrResolverUnavailable)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrResolverUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.Mark(errs.New("resolver returned status "+resp.Status), errs.ErrResolverUnavailable)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrResolverUnavailable)
	}

	result, err := extractResult(body)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrResolverUnavailable)
	}
	return result, nil
}

// extractResult decodes the first well-formed JSON object found in the
// payload. LLM output often wraps the object in prose or code fences, so the
// body itself is rarely clean JSON.
func extractResult(body []byte) (*Result, error) {
	for i := 0; i < len(body); i++ {
		if body[i] != '{' {
			continue
		}

		var raw struct {
			Intent    string `json:"intent"`
			EventName string `json:"eventName"`
			Quantity  *int   `json:"quantity"`
		}
		dec := json.NewDecoder(bytes.NewReader(body[i:]))
		if err := dec.Decode(&raw); err != nil {
			continue
		}
		return normalizeResult(raw.Intent, raw.EventName, raw.Quantity), nil
	}
	return nil, errs.New("no JSON object in resolver response")
}

func normalizeResult(intent, eventName string, quantity *int) *Result {
	// Absent quantity defaults to 1; a present nonpositive value is passed
	// through so the orchestrator rejects the proposal as invalid.
	result := &Result{
		EventName: strings.TrimSpace(eventName),
		Quantity:  1,
	}
	if quantity != nil {
		result.Quantity = *quantity
	}

	switch Intent(strings.TrimSpace(intent)) {
	case IntentProposeBooking:
		result.Intent = IntentProposeBooking
	case IntentShowEvents:
		result.Intent = IntentShowEvents
	case IntentCancel:
		result.Intent = IntentCancel
	default:
		result.Intent = IntentUnknown
	}
	return result
}
