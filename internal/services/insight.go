package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/jlin/moodtrack-api/internal/config"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// InsightService generates short counselor-style reflections on mood entries
// through an OpenAI-compatible chat-completions endpoint.
type InsightService struct {
	client *openai.Client
	model  string
}

// Global insight service instance
var Insight *InsightService

// InitInsight initializes the insight generator. Returns nil gracefully if no
// API key is configured (dev mode): entries are then saved without insights.
func InitInsight(cfg *config.Config) error {
	if cfg.AIAPIKey == "" {
		log.Info("insights: no API key configured, AI insights disabled")
		Insight = &InsightService{client: nil}
		return nil
	}

	client := openai.NewClient(
		option.WithBaseURL(strings.TrimSuffix(cfg.AIBaseURL, "/")+"/v1/"),
		option.WithAPIKey(cfg.AIAPIKey),
	)

	Insight = &InsightService{client: &client, model: cfg.AIModel}
	log.Info("insights: AI insights enabled", "model", cfg.AIModel)
	return nil
}

// EntrySummary carries the fields the prompt is built from.
type EntrySummary struct {
	Mood       int
	Emotions   []string
	Activities []string
	Energy     int
	Sleep      float64
	Notes      string
}

const insightSystemPrompt = "You are an empathetic AI counselor analyzing mood diary entries."

func buildPrompt(s EntrySummary) string {
	notes := s.Notes
	if notes == "" {
		notes = "None provided"
	}

	return fmt.Sprintf(`Analyze this mood diary entry and provide personalized insights. Consider:

Mood Rating: %d/10
Emotions: %s
Activities: %s
Energy Level: %d/5
Sleep: %g hours
Additional Notes: %s

Please provide a brief analysis in simple text format (no markdown):
1. A compassionate observation about their current state
2. Potential patterns or connections between activities and mood
3. One or two gentle, actionable suggestions for well-being

Keep the response warm, supportive, and concise (3-4 sentences). Do not use any special formatting characters like asterisks or bold markers.`,
		s.Mood,
		strings.Join(s.Emotions, ", "),
		strings.Join(s.Activities, ", "),
		s.Energy,
		s.Sleep,
		notes)
}

// Generate returns insight text for the entry, or an error the caller is
// expected to swallow. Persistence never waits on this: a failure means the
// entry simply has no insight.
func (i *InsightService) Generate(ctx context.Context, summary EntrySummary) (string, error) {
	if i == nil || i.client == nil {
		return "", fmt.Errorf("insight generation disabled")
	}

	resp, err := i.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: i.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(insightSystemPrompt),
			openai.UserMessage(buildPrompt(summary)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[0].Message.Content, nil
}
