// Package gemini reads identity documents with a Gemini vision model.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"checkin/internal/document"
	"checkin/internal/extraction"
	"checkin/pkg/platform/sentinel"
	"checkin/pkg/requestcontext"
)

const (
	maxAttempts = 3
	backoffStep = 300 * time.Millisecond
)

// ErrMissingAPIKey is returned by New when no key is configured.
var ErrMissingAPIKey = errors.New("GEMINI_API_KEY is empty")

// generator is the slice of *genai.GenerativeModel the engine needs.
type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Engine extracts document fields through the Gemini generateContent API.
type Engine struct {
	client  *genai.Client
	model   generator
	name    string
	backoff time.Duration
	logger  *slog.Logger
}

// New dials Gemini and configures model for deterministic JSON output.
func New(ctx context.Context, apiKey, model string, logger *slog.Logger) (*Engine, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	name := strings.TrimSpace(model)
	m := cl.GenerativeModel(name)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
	}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt())},
	}

	e := newEngine(m, name, logger)
	e.client = cl
	return e, nil
}

func newEngine(m generator, name string, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{model: m, name: name, backoff: backoffStep, logger: logger}
}

// Name identifies the engine in logs.
func (e *Engine) Name() string { return "gemini:" + e.name }

// Close releases the underlying client.
func (e *Engine) Close() error {
	if e.client == nil {
		return nil
	}
	return e.client.Close()
}

// Extract sends the photo to the model and parses the JSON object it returns.
// Transport failures are retried with linear back-off; a malformed answer is
// not.
func (e *Engine) Extract(ctx context.Context, img extraction.Image) (extraction.Raw, error) {
	parts := []genai.Part{
		genai.Text(userPrompt),
		&genai.Blob{MIMEType: img.MIMEType, Data: img.Data},
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := e.model.GenerateContent(ctx, parts...)
		if err != nil {
			lastErr = err
			e.logger.WarnContext(ctx, "gemini call failed",
				"request_id", requestcontext.RequestID(ctx),
				"attempt", attempt,
				"error", err,
			)
			if attempt == maxAttempts {
				break
			}
			if err := sleep(ctx, time.Duration(attempt)*e.backoff); err != nil {
				return nil, err
			}
			continue
		}
		txt := firstText(resp)
		if txt == "" {
			return nil, fmt.Errorf("gemini: empty response: %w", sentinel.ErrInvalidResponse)
		}
		return parseResponse(txt)
	}
	return nil, fmt.Errorf("gemini: %w: %w", sentinel.ErrUnavailable, lastErr)
}

var jsonObject = regexp.MustCompile(`\{[\s\S]*\}`)

// parseResponse decodes the model answer. Code fences and prose around the
// object are tolerated; non-string scalars are stringified.
func parseResponse(txt string) (extraction.Raw, error) {
	txt = stripCodeFences(txt)

	var fields map[string]any
	if err := json.Unmarshal([]byte(txt), &fields); err != nil {
		obj := jsonObject.FindString(txt)
		if obj == "" {
			return nil, fmt.Errorf("gemini: no JSON object in response: %w", sentinel.ErrInvalidResponse)
		}
		if err := json.Unmarshal([]byte(obj), &fields); err != nil {
			return nil, fmt.Errorf("gemini: bad JSON: %w: %w", sentinel.ErrInvalidResponse, err)
		}
	}

	raw := make(extraction.Raw, len(fields))
	for k, v := range fields {
		raw[k] = stringify(v)
	}
	return raw, nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func ptrFloat32(v float32) *float32 { return &v }

// systemPrompt names every record field so the model answers with the same keys.
func systemPrompt() string {
	keys := make([]string, 0, len(document.FieldNames()))
	for _, name := range document.FieldNames() {
		keys = append(keys, `"`+name.String()+`"`)
	}
	return systemPromptHead + strings.Join(keys, ", ") + systemPromptTail
}
