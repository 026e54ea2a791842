// Package rules is the client for the remote golf-rules answering
// service. A single attempt either yields a parsed answer or one of
// three distinguishable conditions: timeout, network error, or an
// application error reported by the service itself. No retries.
package rules

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/codes"
)

const (
	// DefaultBaseURL is the production rules service endpoint, overridable
	// through configuration.
	DefaultBaseURL = "https://linkslogic-api.onrender.com"

	// askTimeout bounds one question-answering attempt. Past it the
	// request is aborted and reported as ErrTimeout.
	askTimeout = 10 * time.Second
)

// ErrTimeout marks an attempt aborted at the client-side bound, as
// opposed to a transport failure reaching the service.
var ErrTimeout = errors.New("rules service did not answer in time")

// APIError is an application error: the service responded, parsed fine,
// and reported failure itself.
type APIError struct {
	Message string
}

func (e *APIError) Error() string { return e.Message }

type Client struct {
	baseURL    string
	clubID     string
	timeout    time.Duration
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, mostly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(baseURL, clubID string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := &Client{
		baseURL: baseURL,
		clubID:  clubID,
		timeout: askTimeout,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(client)
	}

	return client
}

type AskOptions struct {
	FastMode bool
}

type AskOption func(*AskOptions)

// WithFastMode asks the service to prefer lower-latency processing.
func WithFastMode(fastMode bool) AskOption {
	return func(o *AskOptions) {
		o.FastMode = fastMode
	}
}

// Ask submits one question. The attempt is bounded by a 10 second abort;
// callers distinguish outcomes with errors.Is(err, ErrTimeout) and
// errors.As(err, *APIError).
func (c *Client) Ask(ctx context.Context, question string, opts ...AskOption) (*Answer, error) {
	options := AskOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	ctx, span := tracer.Start(ctx, "ask rules service")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(askRequest{
		Question: question,
		ClubID:   c.clubID,
		FastMode: options.FastMode,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode question: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/ask", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			span.SetStatus(codes.Error, ErrTimeout.Error())
			return nil, fmt.Errorf("%w (after %.1fs)", ErrTimeout, time.Since(start).Seconds())
		}
		recordedErr := fmt.Errorf("failed to reach rules service: %w", err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		return nil, recordedErr
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		recordedErr := fmt.Errorf("rules service returned status %d", resp.StatusCode)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		return nil, recordedErr
	}

	var answer Answer
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		recordedErr := fmt.Errorf("failed to parse rules answer: %w", err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		return nil, recordedErr
	}

	if !answer.Success {
		message := answer.Error
		if message == "" {
			message = "the rules service could not answer the question"
		}
		return nil, &APIError{Message: message}
	}

	return &answer, nil
}

// QuickQuestions fetches the shortcut list. Callers treat a failure as a
// non-event: the list stays empty and no retry is made.
func (c *Client) QuickQuestions(ctx context.Context) ([]QuickQuestion, error) {
	ctx, span := tracer.Start(ctx, "fetch quick questions")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/quick-questions", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		recordedErr := fmt.Errorf("failed to fetch quick questions: %w", err)
		span.RecordError(recordedErr)
		span.SetStatus(codes.Error, recordedErr.Error())
		return nil, recordedErr
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quick questions returned status %d", resp.StatusCode)
	}

	var parsed quickQuestionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse quick questions: %w", err)
	}
	if !parsed.Success {
		message := parsed.Error
		if message == "" {
			message = "quick questions unavailable"
		}
		return nil, &APIError{Message: message}
	}

	return parsed.Questions, nil
}
