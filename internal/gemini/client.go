// Package gemini wraps the two generative calls the application makes:
// embroidery design image synthesis and the admin business advisor.
// Both speak the Gemini generateContent REST API; error policy differs
// on purpose. Image generation propagates failures to the caller, the
// advisor swallows them into a fixed fallback answer.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	imageModel     = "gemini-3-pro-image-preview"
	textModel      = "gemini-3-pro-preview"
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// AdvisorFallback is returned to the user whenever the advisor call
	// fails for any reason.
	AdvisorFallback = "Sorry, I encountered an error while analyzing the data."

	advisorThinkingBudget = 32768
)

// AspectRatios and Resolutions are the option values the image model
// accepts.
var (
	AspectRatios = []string{"1:1", "3:4", "4:3", "9:16", "16:9"}
	Resolutions  = []string{"1K", "2K", "4K"}
)

func ValidAspectRatio(v string) bool { return contains(AspectRatios, v) }
func ValidResolution(v string) bool  { return contains(Resolutions, v) }

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(apiKey string, logger *zap.Logger) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
	}
}

// GenerateOptions describe one image synthesis request.
type GenerateOptions struct {
	Prompt      string
	AspectRatio string
	Resolution  string
}

/* =========================
   WIRE FORMAT
========================= */

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ImageConfig    *imageConfig    `json:"imageConfig,omitempty"`
	ThinkingConfig *thinkingConfig `json:"thinkingConfig,omitempty"`
}

type imageConfig struct {
	AspectRatio string `json:"aspectRatio"`
	ImageSize   string `json:"imageSize"`
}

type thinkingConfig struct {
	ThinkingBudget int `json:"thinkingBudget"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateDesign synthesizes a preview image and returns it as a data
// URL usable directly as an image source. An empty string with a nil
// error means the model produced no image. Transport and provider
// failures are returned to the caller.
func (c *Client) GenerateDesign(ctx context.Context, opts GenerateOptions) (string, error) {
	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: opts.Prompt}}}},
		GenerationConfig: &generationConfig{
			ImageConfig: &imageConfig{
				AspectRatio: opts.AspectRatio,
				ImageSize:   opts.Resolution,
			},
		},
	}

	resp, err := c.generateContent(ctx, imageModel, req)
	if err != nil {
		return "", err
	}

	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				return "data:image/png;base64," + p.InlineData.Data, nil
			}
		}
	}
	return "", nil
}

// Advise answers a free-text business question. Any failure collapses
// into the fixed fallback string; callers never see an error.
func (c *Client) Advise(ctx context.Context, query string) string {
	req := generateRequest{
		Contents: []content{{Parts: []part{{Text: query}}}},
		GenerationConfig: &generationConfig{
			ThinkingConfig: &thinkingConfig{ThinkingBudget: advisorThinkingBudget},
		},
	}

	resp, err := c.generateContent(ctx, textModel, req)
	if err != nil {
		c.logger.Warn("advisor call failed", zap.Error(err))
		return AdvisorFallback
	}

	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.Text != "" {
				return p.Text
			}
		}
	}
	return "I couldn't generate an insight at this time."
}

func (c *Client) generateContent(ctx context.Context, model string, payload generateRequest) (*generateResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini: %s returned %d: %s", model, httpResp.StatusCode, truncate(raw, 200))
	}

	var resp generateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("gemini: decoding response: %w", err)
	}
	return &resp, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
