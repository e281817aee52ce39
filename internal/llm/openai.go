package llm

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// OpenAIClient implements Client over the OpenAI chat completions API.
type OpenAIClient struct {
	cfg  *Config
	opts []option.RequestOption
}

// NewOpenAIClient creates an OpenAI-backed gateway client.
func NewOpenAIClient(cfg *Config) (*OpenAIClient, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, errors.New("openai api key is required")
	}

	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &OpenAIClient{cfg: cfg.withFallbacks(DefaultOpenAIModel), opts: opts}, nil
}

// Chat sends the conversation and returns the first choice's content
// verbatim. Zero choices or empty content is a GatewayError with
// KindEmptyResponse, never a silently empty string.
func (c *OpenAIClient) Chat(ctx context.Context, conv Conversation) (string, error) {
	client := openai.NewClient(c.opts...)

	msgs := make([]openai.ChatCompletionMessageParamUnion, 0, len(conv))
	for _, m := range conv {
		switch m.Role {
		case RoleSystem:
			msgs = append(msgs, openai.SystemMessage(m.Content))
		default:
			msgs = append(msgs, openai.UserMessage(m.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(c.cfg.Model),
		Messages:    msgs,
		Temperature: openai.Float(c.cfg.Temperature),
	}

	var content string
	op := func() error {
		callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()

		resp, err := client.Chat.Completions.New(callCtx, params)
		if err != nil {
			return retryable(classifyOpenAI(err))
		}
		if len(resp.Choices) == 0 {
			return retryable(&GatewayError{Kind: KindEmptyResponse, Message: "response contained no choices"})
		}
		content = resp.Choices[0].Message.Content
		if content == "" {
			return retryable(&GatewayError{Kind: KindEmptyResponse, Message: "choice content was empty"})
		}
		return nil
	}

	if err := withRetry(ctx, c.cfg.MaxRetries, op); err != nil {
		return "", err
	}
	return content, nil
}

// Close implements Client; the OpenAI SDK holds no long-lived state.
func (c *OpenAIClient) Close() error { return nil }

func classifyOpenAI(err error) *GatewayError {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		return &GatewayError{
			Kind:       KindService,
			StatusCode: apierr.StatusCode,
			Message:    apierr.Message,
			Cause:      err,
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &GatewayError{Kind: KindTimeout, Message: "completion call timed out", Cause: err}
	}
	return &GatewayError{Kind: KindUnreachable, Message: err.Error(), Cause: err}
}
