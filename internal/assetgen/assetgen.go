// Package assetgen generates brand visuals in two steps: the Gemini API
// refines a short brief into a detailed image prompt, and the result is
// handed to a prompt-driven image endpoint as a URL.
package assetgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	imageBaseURL   = "https://pollinations.ai/p/"
	model          = "gemini-1.5-flash"
)

// fallbackPrompt is used when the model returns nothing usable.
const fallbackPrompt = "Modern fintech visual"

// Request describes the asset to generate. Type is "logo" or "hero";
// blank means logo.
type Request struct {
	Brand string `json:"brand"`
	Type  string `json:"type"`
	Style string `json:"style"`
}

// Asset is a refined prompt and the image URL built from it.
type Asset struct {
	URL    string `json:"url"`
	Prompt string `json:"prompt"`
}

// Generator produces an Asset for a Request.
type Generator interface {
	GenerateAsset(ctx context.Context, req Request) (*Asset, error)
}

type generator struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	seed       func() int
}

// NewGenerator creates a Generator backed by the Gemini API.
func NewGenerator(apiKey string) Generator {
	return &generator{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		seed:       func() int { return rand.Intn(1000) },
	}
}

// NewGeneratorWithBaseURL creates a Generator against a non-default model
// endpoint with a fixed image seed.
func NewGeneratorWithBaseURL(apiKey, baseURL string, seed int) Generator {
	g := NewGenerator(apiKey).(*generator)
	g.baseURL = strings.TrimSuffix(baseURL, "/")
	g.seed = func() int { return seed }
	return g
}

// GenerateAsset refines the brief into an image prompt and returns the
// image URL for it. A model reply with no text falls back to a generic
// prompt rather than failing.
func (g *generator) GenerateAsset(ctx context.Context, req Request) (*Asset, error) {
	assetType := req.Type
	if assetType == "" {
		assetType = "logo"
	}
	style := req.Style
	if style == "" {
		style = "Modern & Clean"
	}

	imageContext := "High-converting hero background for loan site"
	requirements := "Photorealistic, soft lighting, lots of copy space, 16:9"
	if assetType == "logo" {
		imageContext = "Fintech logo design"
		requirements = "Flat vector, minimalist, white background, no text except brand"
	}

	prompt := fmt.Sprintf(`Act as an expert AI prompt engineer. Create a highly detailed, professional prompt for an image generator (DALL-E 3 style).
Brand: %q
Context: %q
Style: %q
Requirements: %s
Output: ONLY the refined prompt text. No chatter.`,
		req.Brand, imageContext, style, requirements)

	refined, err := g.refinePrompt(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if refined == "" {
		refined = fallbackPrompt
	}

	width, height := 1280, 720
	if assetType == "logo" {
		width, height = 512, 512
	}
	imageURL := fmt.Sprintf("%s%s?width=%d&height=%d&nologo=true&seed=%d",
		imageBaseURL, url.PathEscape(refined), width, height, g.seed())

	return &Asset{URL: imageURL, Prompt: refined}, nil
}

// refinePrompt sends one text prompt through the generateContent endpoint
// and returns the first candidate's text, empty when the model gave none.
func (g *generator) refinePrompt(ctx context.Context, prompt string) (string, error) {
	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, model, url.QueryEscape(g.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("prompt refinement request: %w", err)
	}
	defer resp.Body.Close()

	var parsed struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", nil
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text), nil
}
