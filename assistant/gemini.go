// Package assistant wraps the generative-text collaborator behind the
// /api/generate pass-through endpoint.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const systemPrompt = "You are a helpful medical-booking assistant. " +
	"Help patients find the right specialist and explain how to book, " +
	"reschedule or cancel appointments. Do not give medical diagnoses; " +
	"advise seeing a doctor instead."

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client generates one reply for a conversation. No retries, no streaming.
type Client interface {
	Generate(ctx context.Context, messages []Message) (string, error)
}

type Config struct {
	APIKey string
	Model  string `default:"gemini-2.5-flash"`
}

type Gemini struct {
	client  *genai.Client
	modelID string
}

func NewGemini(ctx context.Context, config Config) (*Gemini, error) {
	if strings.TrimSpace(config.APIKey) == "" {
		return nil, errors.New("assistant: api key is required")
	}
	if strings.TrimSpace(config.Model) == "" {
		config.Model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(config.APIKey))
	if err != nil {
		return nil, fmt.Errorf("assistant: failed to create gemini client: %w", err)
	}

	return &Gemini{client: client, modelID: config.Model}, nil
}

func (g *Gemini) Generate(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", errors.New("assistant: at least one message is required")
	}

	model := g.client.GenerativeModel(g.modelID)
	model.SystemInstruction = genai.NewUserContent(genai.Text(systemPrompt))

	cs := model.StartChat()
	for _, msg := range messages[:len(messages)-1] {
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			continue
		}

		role := "user"
		if msg.Role == "assistant" {
			role = "model"
		}

		cs.History = append(cs.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(content)},
		})
	}

	last := messages[len(messages)-1]
	resp, err := cs.SendMessage(ctx, genai.Text(last.Content))
	if err != nil {
		return "", fmt.Errorf("assistant: completion failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return "", errors.New("assistant: no candidates returned")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("assistant: empty content returned")
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	return sb.String(), nil
}
