package nutrition

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jurat11/BiteWise-sub000/models"
)

var (
	// ErrEmptyInput is a caller error: neither text nor image supplied.
	ErrEmptyInput = errors.New("nutrition: empty input")
	// ErrUpstream wraps transport or model failures; retryable.
	ErrUpstream = errors.New("nutrition: upstream failure")
)

// Analysis is one analyzed meal. OK is false when the model reply could not
// be parsed and the conservative defaults were substituted.
type Analysis struct {
	Nutrients      models.Nutrients
	PositiveEffect string
	HealthNote     string
	Recommendation string
	OK             bool
}

// Analyzer turns free text or a photo into a quantified nutrient record via
// the Gemini multimodal endpoint.
type Analyzer struct {
	client *genai.Client
	model  string
}

func NewAnalyzer(ctx context.Context, apiKey, model string) (*Analyzer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Analyzer{client: client, model: model}, nil
}

func (a *Analyzer) Close() error {
	return a.client.Close()
}

// Analyze sends the prompt (plus image for the photo path) and parses the
// reply. A transport or model failure returns ErrUpstream; an unparseable
// reply degrades to the default record with OK=false instead of failing.
func (a *Analyzer) Analyze(ctx context.Context, lang models.Language, kind models.MealKind, text string, image []byte, dailyCalories int) (*Analysis, error) {
	if strings.TrimSpace(text) == "" && len(image) == 0 {
		return nil, ErrEmptyInput
	}

	prompt := BuildPrompt(lang, kind, text, len(image) > 0, dailyCalories)
	parts := []genai.Part{genai.Text(prompt)}
	if len(image) > 0 {
		parts = append(parts, genai.ImageData("jpeg", image))
	}

	model := a.client.GenerativeModel(a.model)
	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("%w: no content generated", ErrUpstream)
	}

	var reply strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			reply.WriteString(string(t))
			reply.WriteString("\n")
		}
	}

	parsed := ParseResponse(lang, reply.String())
	if !parsed.Parsed {
		return &Analysis{Nutrients: DefaultNutrients(), OK: false}, nil
	}
	return &Analysis{
		Nutrients:      parsed.Nutrients,
		PositiveEffect: parsed.PositiveEffect,
		HealthNote:     parsed.HealthNote,
		Recommendation: parsed.Recommendation,
		OK:             true,
	}, nil
}
