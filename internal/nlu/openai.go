package nlu

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Entity type names the dialog handlers ask for.
const (
	EntityName    = "Name"
	EntityEmail   = "email"
	EntityZipCode = "ZipCode"
	EntityCity    = "City"
	EntityStreet  = "Street"
)

const extractorPrompt = `Du extrahierst Entitäten aus deutschen Chat-Nachrichten einer Kundenregistrierung.
Erkenne Entitäten der Typen: Name, email, ZipCode, City, Street.
Antworte NUR mit validem JSON, ohne Text außerhalb des JSON.
Format strikt:
{"entities":[{"name":"Typ","text":"erkannter Text","confidence":0.0}]}
Wenn nichts erkannt wird: {"entities":[]}`

// OpenAIExtractor recognizes registration entities with a chat completion
// forced into a JSON-only reply.
type OpenAIExtractor struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	log     *zap.Logger
}

func NewOpenAIExtractor(client *openai.Client, model string, timeout time.Duration, log *zap.Logger) *OpenAIExtractor {
	if model == "" {
		model = openai.GPT4oMini
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &OpenAIExtractor{client: client, model: model, timeout: timeout, log: log}
}

func (e *OpenAIExtractor) Extract(ctx context.Context, text string) ([]Entity, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: extractorPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
	})
	if err != nil {
		e.log.Warn("entity extraction failed", zap.Error(err))
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, nil
	}

	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	var parsed struct {
		Entities []Entity `json:"entities"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		// A malformed reply counts as "nothing found", not as a failure.
		e.log.Warn("entity extraction returned invalid json", zap.String("raw", short(raw)))
		return nil, nil
	}
	return parsed.Entities, nil
}

func short(s string) string {
	if len(s) > 180 {
		return s[:180] + "..."
	}
	return s
}
