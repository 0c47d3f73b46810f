package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/lionetto/portfolio-server/internal/model"
)

// Generator produces one model reply for a conversation governed by a system
// prompt. Implementations talk to an external generative-language service.
type Generator interface {
	Generate(ctx context.Context, systemPrompt string, history []model.ChatMessage) (string, error)
}

// GeminiClient calls the Gemini generateContent REST API.
type GeminiClient struct {
	client *resty.Client
	model  string
	apiKey string
}

// NewGeminiClient builds a client for the given endpoint, key and model.
func NewGeminiClient(baseURL, apiKey, modelName string) *GeminiClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(60 * time.Second)

	return &GeminiClient{client: c, model: modelName, apiKey: apiKey}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *geminiContent   `json:"system_instruction,omitempty"`
	Contents          []geminiContent  `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate sends the full turn history plus system prompt and returns the
// model's reply text. Any transport failure, error status, or empty candidate
// text is returned as an error for the session layer to absorb.
func (g *GeminiClient) Generate(ctx context.Context, systemPrompt string, history []model.ChatMessage) (string, error) {
	contents := make([]geminiContent, 0, len(history))
	for _, m := range history {
		contents = append(contents, geminiContent{
			Role:  string(m.Role),
			Parts: []geminiPart{{Text: m.Text}},
		})
	}

	reqBody := generateRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: systemPrompt}}},
		Contents:          contents,
		GenerationConfig:  generationConfig{Temperature: 0.7},
	}

	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("key", g.apiKey).
		SetBody(&reqBody).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", g.model))
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("gemini status %d: %s", resp.StatusCode(), resp.String())
	}

	var out generateResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("gemini error: %s", out.Error.Message)
	}
	if len(out.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var texts []string
	for _, p := range out.Candidates[0].Content.Parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	reply := strings.TrimSpace(strings.Join(texts, ""))
	if reply == "" {
		return "", fmt.Errorf("gemini returned an empty reply")
	}
	return reply, nil
}
