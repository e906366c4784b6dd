// Package gemini implements skilledhelpers.Diagnoser using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/skilledhelpers"
	"github.com/fwojciec/skilledhelpers/jsonschema"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Diagnoser implements skilledhelpers.Diagnoser at compile time.
var _ skilledhelpers.Diagnoser = (*Diagnoser)(nil)

// Diagnoser implements skilledhelpers.Diagnoser using Google Gemini.
// Each call sends exactly one request; failures are never retried.
type Diagnoser struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
}

// Option configures a Diagnoser.
type Option func(*Diagnoser)

// WithModel sets the Gemini model. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(d *Diagnoser) {
		if model != "" {
			d.model = model
		}
	}
}

// WithLimiter paces requests through l, e.g. to stay within API quota.
func WithLimiter(l *rate.Limiter) Option {
	return func(d *Diagnoser) {
		d.limiter = l
	}
}

// NewDiagnoser creates a new Diagnoser. A nil client means no API key is
// configured; Diagnose then fails without sending anything.
func NewDiagnoser(client *genai.Client, opts ...Option) *Diagnoser {
	d := &Diagnoser{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Diagnose classifies the problem into a worker category.
func (d *Diagnoser) Diagnose(ctx context.Context, problem string) (*skilledhelpers.Diagnosis, error) {
	problem = strings.TrimSpace(problem)
	if problem == "" {
		return nil, skilledhelpers.Errorf(skilledhelpers.EINVALID, "problem description required")
	}
	if d.client == nil {
		return nil, skilledhelpers.Errorf(skilledhelpers.EUNAUTHORIZED, "API key is missing")
	}

	if d.limiter != nil {
		if err := d.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting for rate limiter: %w", err)
		}
	}

	result, err := d.client.Models.GenerateContent(ctx, d.model,
		[]*genai.Content{genai.NewContentFromText(BuildPrompt(problem), "user")},
		BuildConfig(),
	)
	if err != nil {
		return nil, skilledhelpers.Errorf(skilledhelpers.EUNAVAILABLE, "diagnosis request failed: %v", err)
	}
	if result == nil {
		return nil, skilledhelpers.Errorf(skilledhelpers.EINTERNAL, "gemini returned nil result")
	}

	return ParseDiagnosis(result.Text())
}

// BuildPrompt builds the user prompt for a problem description.
func BuildPrompt(problem string) string {
	names := make([]string, 0, len(skilledhelpers.Categories()))
	for _, c := range skilledhelpers.Categories() {
		names = append(names, string(c))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "I have a home maintenance problem: %q.\n", problem)
	fmt.Fprintf(&sb, "Diagnose the issue, identify the professional category needed (%s), ", strings.Join(names, ", "))
	sb.WriteString("provide a short safety tip, and a suggested immediate action.")
	return sb.String()
}

// BuildConfig returns the GenerateContentConfig constraining the response
// to a JSON object matching BuildSchema.
func BuildConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   BuildSchema(),
	}
}

// BuildSchema returns the response schema: four required strings, with
// the category restricted to the worker categories.
func BuildSchema() *genai.Schema {
	cats := skilledhelpers.Categories()
	enum := make([]string, len(cats))
	for i, c := range cats {
		enum[i] = string(c)
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"category": {
				Type:        genai.TypeString,
				Enum:        enum,
				Description: "The most suitable worker category for the problem.",
			},
			"safetyTip": {
				Type:        genai.TypeString,
				Description: "A crucial safety tip related to the problem.",
			},
			"reasoning": {
				Type:        genai.TypeString,
				Description: "Brief explanation of why this category was chosen.",
			},
			"suggestedAction": {
				Type:        genai.TypeString,
				Description: "Immediate action the user should take before the pro arrives.",
			},
		},
		Required:         []string{"category", "safetyTip", "reasoning", "suggestedAction"},
		PropertyOrdering: []string{"category", "safetyTip", "reasoning", "suggestedAction"},
	}
}

// ParseDiagnosis decodes the raw model response. Returns ECORRUPT when the
// text is empty or does not match the response schema.
func ParseDiagnosis(text string) (*skilledhelpers.Diagnosis, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, skilledhelpers.Errorf(skilledhelpers.ECORRUPT, "empty diagnosis response")
	}
	if err := jsonschema.ValidateDiagnosis([]byte(text)); err != nil {
		return nil, err
	}

	var d skilledhelpers.Diagnosis
	if err := json.Unmarshal([]byte(text), &d); err != nil {
		return nil, skilledhelpers.Errorf(skilledhelpers.ECORRUPT, "malformed diagnosis: %v", err)
	}
	if err := d.Validate(); err != nil {
		return nil, skilledhelpers.Errorf(skilledhelpers.ECORRUPT, "malformed diagnosis: %s", skilledhelpers.ErrorMessage(err))
	}
	return &d, nil
}
