package llm

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// GeminiClient implements Client over the Google Gemini API.
type GeminiClient struct {
	client *genai.Client
	cfg    *Config
}

// NewGeminiClient creates a Gemini-backed gateway client.
func NewGeminiClient(ctx context.Context, cfg *Config) (*GeminiClient, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, err
	}

	return &GeminiClient{client: client, cfg: cfg.withFallbacks(DefaultGeminiModel)}, nil
}

// Chat sends the conversation and returns the first candidate's text
// verbatim. The system message maps to a system instruction; user
// messages become content parts.
func (c *GeminiClient) Chat(ctx context.Context, conv Conversation) (string, error) {
	model := c.client.GenerativeModel(c.cfg.Model)
	model.SetTemperature(float32(c.cfg.Temperature))

	var parts []genai.Part
	for _, m := range conv {
		switch m.Role {
		case RoleSystem:
			model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(m.Content)}}
		default:
			parts = append(parts, genai.Text(m.Content))
		}
	}

	var content string
	op := func() error {
		callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()

		resp, err := model.GenerateContent(callCtx, parts...)
		if err != nil {
			return retryable(classifyGemini(err))
		}

		text, gerr := candidateText(resp)
		if gerr != nil {
			return retryable(gerr)
		}
		content = text
		return nil
	}

	if err := withRetry(ctx, c.cfg.MaxRetries, op); err != nil {
		return "", err
	}
	return content, nil
}

// Close releases resources held by the client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// candidateText picks the first candidate's text parts. A response
// with no candidates or no text is an empty-response gateway error.
func candidateText(resp *genai.GenerateContentResponse) (string, *GatewayError) {
	if len(resp.Candidates) == 0 {
		return "", &GatewayError{Kind: KindEmptyResponse, Message: "response contained no candidates"}
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", &GatewayError{Kind: KindEmptyResponse, Message: "candidate had no content parts"}
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", &GatewayError{Kind: KindEmptyResponse, Message: "candidate had no text parts"}
	}

	return sb.String(), nil
}

func classifyGemini(err error) *GatewayError {
	var apierr *googleapi.Error
	if errors.As(err, &apierr) {
		return &GatewayError{
			Kind:       KindService,
			StatusCode: apierr.Code,
			Message:    apierr.Message,
			Cause:      err,
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &GatewayError{Kind: KindTimeout, Message: "completion call timed out", Cause: err}
	}
	return &GatewayError{Kind: KindUnreachable, Message: err.Error(), Cause: err}
}
