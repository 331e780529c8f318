package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/setforge/setforge/internal/config"
)

const systemMessage = "You expand short descriptions of kits or collections into " +
	"exhaustive lists. Always respond with JSON in the shape " +
	`{"items": [ ... ]}. Include only plain strings.`

type openaiSource struct {
	client openai.Client
	model  string
}

func newOpenAISource(cfg config.OpenAIConfig) *openaiSource {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &openaiSource{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
	}
}

func (o *openaiSource) Items(ctx context.Context, prompt string) ([]string, error) {
	completion, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemMessage),
			openai.UserMessage(prompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return nil, classifyModelError(ctx, err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return nil, errors.New("The language model returned an empty response.")
	}

	var parsed struct {
		Items []any `json:"items"`
	}
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &parsed); err != nil {
		slog.Debug("language model content was not valid JSON", "error", err)
		return nil, errors.New("The language model response was not valid JSON.")
	}
	if len(parsed.Items) == 0 {
		return nil, errors.New("The language model response did not include any items.")
	}

	items := make([]string, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if s, ok := item.(string); ok {
			items = append(items, s)
		}
	}
	cleaned := cleanItems(items)
	if len(cleaned) == 0 {
		return nil, errors.New("The language model response did not include any items.")
	}
	return cleaned, nil
}

// classifyModelError turns SDK failures into the messages the UI shows
// verbatim. Authentication failures get a dedicated hint because they are by
// far the most common misconfiguration.
func classifyModelError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var apierr *openai.Error
	if errors.As(err, &apierr) {
		if apierr.StatusCode == 401 {
			return errors.New("The language model rejected the request. Check your API key and permissions.")
		}
		detail := apierr.Message
		if detail == "" {
			detail = "unknown error"
		}
		return fmt.Errorf("Language model request failed with status %d: %s", apierr.StatusCode, detail)
	}

	slog.Error("failed to reach the language model service", "error", err)
	return errors.New("Could not reach the language model service. Check your network connection and try again.")
}
