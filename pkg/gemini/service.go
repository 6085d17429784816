package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"sellshot-backend/pkg/imagedata"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

type GeminiService struct {
	ApiKey     string
	TextModel  string
	ImageModel string

	baseURL string
}

func NewGeminiService(apiKey, textModel, imageModel string) *GeminiService {
	if textModel == "" {
		textModel = "gemini-2.5-flash"
	}
	if imageModel == "" {
		imageModel = "gemini-2.5-flash-image"
	}
	return &GeminiService{
		ApiKey:     apiKey,
		TextModel:  textModel,
		ImageModel: imageModel,
		baseURL:    defaultBaseURL,
	}
}

// request/response shapes for generateContent, reduced to the fields we use.

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents         []content      `json:"contents"`
	GenerationConfig map[string]any `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text       string `json:"text"`
				InlineData *struct {
					MimeType string `json:"mimeType"`
					Data     string `json:"data"`
				} `json:"inlineData"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Analyze asks the text model for product-photography prompt suggestions.
func (g *GeminiService) Analyze(ctx context.Context, imageDataURL string) ([]string, error) {
	mimeType, data, err := imagedata.Decode(imageDataURL)
	if err != nil {
		return nil, fmt.Errorf("invalid image: %w", err)
	}

	prompt := `You are a product photography art director. Look at this product photo and suggest 3 short prompts for re-shooting it as a professional e-commerce shot (background, surface, lighting). Respond with a JSON array of strings only, best suggestion first.`

	req := generateRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(data)}},
				{Text: prompt},
			},
		}},
		GenerationConfig: map[string]any{
			"responseMimeType": "application/json",
		},
	}

	resp, err := g.generateContent(ctx, g.TextModel, req)
	if err != nil {
		return nil, err
	}

	text := firstText(resp)
	if text == "" {
		return nil, fmt.Errorf("no suggestions returned")
	}

	var suggestions []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions: %w", err)
	}
	return suggestions, nil
}

// Edit applies an instruction to an image using the image model.
func (g *GeminiService) Edit(ctx context.Context, imageDataURL, instruction string) (string, error) {
	mimeType, data, err := imagedata.Decode(imageDataURL)
	if err != nil {
		return "", fmt.Errorf("invalid image: %w", err)
	}

	req := generateRequest{
		Contents: []content{{
			Parts: []part{
				{InlineData: &inlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(data)}},
				{Text: instruction},
			},
		}},
	}

	resp, err := g.generateContent(ctx, g.ImageModel, req)
	if err != nil {
		return "", err
	}
	return firstImage(resp)
}

// Generate creates an image from a text prompt using the image model.
func (g *GeminiService) Generate(ctx context.Context, prompt string) (string, error) {
	req := generateRequest{
		Contents: []content{{
			Parts: []part{{Text: prompt}},
		}},
	}

	resp, err := g.generateContent(ctx, g.ImageModel, req)
	if err != nil {
		return "", err
	}
	return firstImage(resp)
}

func (g *GeminiService) generateContent(ctx context.Context, model string, payload generateRequest) (*generateResponse, error) {
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", g.baseURL, model, g.ApiKey)

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gemini API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &result, nil
}

func firstText(resp *generateResponse) string {
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.Text != "" {
				return p.Text
			}
		}
	}
	return ""
}

func firstImage(resp *generateResponse) (string, error) {
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.InlineData != nil && p.InlineData.Data != "" {
				data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
				if err != nil {
					return "", fmt.Errorf("invalid image payload: %w", err)
				}
				mimeType := p.InlineData.MimeType
				if mimeType == "" {
					mimeType = "image/png"
				}
				return imagedata.Encode(mimeType, data), nil
			}
		}
	}
	return "", fmt.Errorf("no image returned")
}
