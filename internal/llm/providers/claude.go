package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"staffhub-utils/internal/config"
	"staffhub-utils/internal/llm/prompt"
	"staffhub-utils/internal/llm/schema"
	"staffhub-utils/internal/logging"
)

// ClaudeProvider implements the LLM provider interface using Anthropic's Claude
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
	logger logging.Logger
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.LLM.APIKey),
	)

	return &ClaudeProvider{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Complete sends a rendered prompt plus output contract to Claude and returns
// the raw JSON of its answer
func (cp *ClaudeProvider) Complete(ctx context.Context, p *prompt.Prompt, contract *schema.Contract) ([]byte, error) {
	startTime := time.Now()

	cp.logger.Info("Starting structured completion with Claude", map[string]interface{}{
		"contract":    contract.Name,
		"prompt_size": len(p.Text),
		"attachments": len(p.Attachments),
		"provider":    "claude",
	})

	content := []anthropic.ContentBlockParamUnion{{
		OfText: &anthropic.TextBlockParam{Text: cp.buildInstructionText(p, contract)},
	}}

	// Attachments stay base64-encoded; the model decodes them itself
	for i, att := range p.Attachments {
		text := fmt.Sprintf(
			"Attached document %d (%s), base64-encoded. Decode it and treat its contents as the document referenced above:\n%s",
			i+1, att.MimeType, att.Data,
		)
		content = append(content, anthropic.ContentBlockParamUnion{
			OfText: &anthropic.TextBlockParam{Text: text},
		})
	}

	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(cp.config.LLM.Model),
		MaxTokens:   int64(cp.config.LLM.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.LLM.Temperature)),
		Messages: []anthropic.MessageParam{{
			Content: content,
			Role:    anthropic.MessageParamRoleUser,
		}},
	})

	if err != nil {
		return nil, fmt.Errorf("failed to call Claude API: %w", err)
	}

	raw, err := extractResponseJSON(response)
	if err != nil {
		return nil, err
	}

	cp.logger.Info("Structured completion finished", map[string]interface{}{
		"contract":        contract.Name,
		"processing_time": time.Since(startTime),
		"provider":        "claude",
	})

	return raw, nil
}

// buildInstructionText appends the output contract and formatting rules to
// the rendered prompt
func (cp *ClaudeProvider) buildInstructionText(p *prompt.Prompt, contract *schema.Contract) string {
	return fmt.Sprintf(`%s

Return the result as a valid JSON object with exactly these fields:

%s

IMPORTANT RULES:
1. Return ONLY valid JSON, no additional text or explanation
2. If information is not found, use empty string "" for strings and empty array [] for arrays; omit optional fields entirely
3. Dates must use ISO calendar format (YYYY-MM-DD)
4. Do not add fields that are not in the schema`,
		p.Text, contract.Instructions())
}

// extractResponseJSON pulls the text content out of a Claude response and
// strips any markdown code fences
func extractResponseJSON(response *anthropic.Message) ([]byte, error) {
	if len(response.Content) == 0 {
		return nil, fmt.Errorf("empty response from Claude")
	}

	var responseText string
	for _, content := range response.Content {
		textContent := content.AsText()
		responseText = textContent.Text
		break
	}

	if responseText == "" {
		return nil, fmt.Errorf("no text content in Claude response")
	}

	responseText = strings.TrimSpace(responseText)
	if strings.HasPrefix(responseText, "```json") {
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)
	} else if strings.HasPrefix(responseText, "```") {
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)
	}

	return []byte(responseText), nil
}

// IsHealthy checks if the Claude provider is healthy and available
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	if cp.config.LLM.APIKey == "" {
		return fmt.Errorf("Claude API key not configured - set LLM_API_KEY environment variable")
	}

	_, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(cp.config.LLM.Model),
		MaxTokens: 500,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: "Hello"},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})

	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the LLM provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}
