package narrative

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/joho/godotenv"
)

// APIKeyEnv is the environment variable consulted for the credential.
const APIKeyEnv = "ANTHROPIC_API_KEY"

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-sonnet-4-5"

// Client wraps the Anthropic SDK for narrative calls.
type Client struct {
	inner anthropic.Client
	model anthropic.Model
}

// ResolveAPIKey picks the credential: explicit key, then the environment,
// then envFile (a dotenv file; missing files are ignored).
func ResolveAPIKey(apiKey, envFile string) string {
	if apiKey != "" {
		return apiKey
	}
	if v := os.Getenv(APIKeyEnv); v != "" {
		return v
	}
	if envFile == "" {
		return ""
	}
	vals, err := godotenv.Read(envFile)
	if err != nil {
		return ""
	}
	return vals[APIKeyEnv]
}

// NewClient creates a narrative client. model defaults to DefaultModel.
func NewClient(apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNoCredential
	}
	m := anthropic.Model(DefaultModel)
	if model != "" {
		m = anthropic.Model(model)
	}
	return &Client{
		inner: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model: m,
	}, nil
}

const systemPrompt = `You are a senior public transport consultant reviewing a Monte Carlo simulation of a single bus stop.

Respond with:
1. A short assessment of how the stop performs.
2. Three specific, technical recommendations as bullet points.

Be concise, direct and grounded in the numbers you are given.`

// buildPrompt renders the statistics and inputs for the model.
func buildPrompt(in Input) string {
	var sb strings.Builder
	sb.WriteString("SIMULATION STATISTICS:\n")
	sb.WriteString(fmt.Sprintf("- Average wait time: %.2f minutes\n", in.AvgWaitTime))
	sb.WriteString(fmt.Sprintf("- Average queue length: %.1f passengers\n", in.AvgQueueLength))
	sb.WriteString(fmt.Sprintf("- Bus utilization: %.1f%%\n", in.Utilization*100))
	sb.WriteString(fmt.Sprintf("- Buses leaving full: %.1f%%\n", in.ProbBusFull*100))
	sb.WriteString("\nINPUT PARAMETERS:\n")
	sb.WriteString(fmt.Sprintf("- Passenger demand: %g passengers/minute\n", in.ArrivalRate))
	sb.WriteString(fmt.Sprintf("- Bus interval: %d minutes\n", in.BusIntervalMinutes))
	sb.WriteString(fmt.Sprintf("- Bus capacity: %d seats\n", in.BusCapacity))
	return sb.String()
}

// Narrate asks the model for an assessment of in.
func (c *Client) Narrate(ctx context.Context, in Input) (string, error) {
	resp, err := c.inner.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: int64(1024),
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(in))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("narrative API call: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("narrative API returned no text")
	}
	return text, nil
}
