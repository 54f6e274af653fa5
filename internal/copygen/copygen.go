// Package copygen generates landing page copy with the OpenAI chat API.
package copygen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/rxtech-lab/lp-factory/internal/models"
)

// Request describes the offer the copy is written for.
type Request struct {
	Brand     string `json:"brand"`
	LoanType  string `json:"loanType"`
	AmountMin int    `json:"amountMin"`
	AmountMax int    `json:"amountMax"`
	Lang      string `json:"lang"`
}

// Copy is the generated set of landing page strings.
type Copy struct {
	H1      string `json:"h1"`
	Badge   string `json:"badge"`
	CTA     string `json:"cta"`
	Sub     string `json:"sub"`
	Tagline string `json:"tagline"`
}

// Generator produces Copy for a Request.
type Generator interface {
	GenerateCopy(ctx context.Context, req Request) (*Copy, error)
}

type generator struct {
	client *openai.Client
	model  string
}

// NewGenerator creates a Generator backed by the OpenAI API.
func NewGenerator(apiKey string) Generator {
	return &generator{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
	}
}

// GenerateCopy asks the model for a strict-JSON copy set and parses it.
func (g *generator) GenerateCopy(ctx context.Context, req Request) (*Copy, error) {
	lang := req.Lang
	if lang == "" {
		lang = "English"
	}

	prompt := fmt.Sprintf(`Generate high-converting loan landing page copy.
Brand: %q
Loan Type: %q
Amount Range: $%d-$%d
Language: %s
Format: Strict JSON object only. No markdown.
Structure: {"h1":"","badge":"","cta":"","sub":"","tagline":""}`,
		req.Brand, req.LoanType, req.AmountMin, req.AmountMax, lang)

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	return ParseCopy(resp.Choices[0].Message.Content)
}

// ParseCopy parses a model response into Copy, tolerating markdown code
// fences around the JSON.
func ParseCopy(text string) (*Copy, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var copySet Copy
	if err := json.Unmarshal([]byte(cleaned), &copySet); err != nil {
		return nil, fmt.Errorf("parsing generated copy: %w", err)
	}
	return &copySet, nil
}

// FillBlankFields copies generated strings into the site's blank copy
// fields. Values the operator already set are never overwritten.
func FillBlankFields(site *models.Site, copySet *Copy) {
	if copySet == nil {
		return
	}
	if site.H1 == "" {
		site.H1 = copySet.H1
	}
	if site.Badge == "" {
		site.Badge = copySet.Badge
	}
	if site.CTA == "" {
		site.CTA = copySet.CTA
	}
	if site.Sub == "" {
		site.Sub = copySet.Sub
	}
	if site.Tagline == "" {
		site.Tagline = copySet.Tagline
	}
}
