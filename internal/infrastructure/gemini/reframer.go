package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"journal-service/internal/config"
	"journal-service/internal/domain/entity"

	"google.golang.org/genai"
)

// systemInstruction is fixed and not user-editable.
const systemInstruction = `You are a supportive cognitive-behavioral-therapy companion.
Respond with empathy in no more than 120 words, in three short parts:
first validate the feeling, then gently name the cognitive distortion at play,
then offer one kinder, more balanced way to see the situation.
Plain prose, no lists, no clinical jargon.`

const userPromptTemplate = "The user is feeling %s today. They wrote down this negative thought: %q. Offer a gentle reframing of it."

// Reframer implements the text-generation capability using the Gemini API.
type Reframer struct {
	client          *genai.Client
	model           string
	timeout         time.Duration
	maxOutputTokens int32
}

// NewReframer creates a Gemini-backed reframer.
func NewReframer(ctx context.Context, cfg *config.GenerationConfig) (*Reframer, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("generation API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Reframer{
		client:          client,
		model:           cfg.Model,
		timeout:         cfg.Timeout,
		maxOutputTokens: cfg.MaxOutputTokens,
	}, nil
}

// Reframe asks the model for a CBT-style reframing of the thought. Exactly one
// attempt is made; all failure kinds surface as a single error for the caller
// to absorb.
func (r *Reframer) Reframe(ctx context.Context, mood entity.Mood, thought string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	prompt := fmt.Sprintf(userPromptTemplate, mood.Label(), thought)

	resp, err := r.client.Models.GenerateContent(ctx,
		r.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
			Temperature:       genai.Ptr[float32](0.7),
			MaxOutputTokens:   r.maxOutputTokens,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate reframing: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("model returned no text")
	}
	return text, nil
}
