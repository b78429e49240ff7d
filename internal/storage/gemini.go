package storage

import (
	"context"
	"errors"
	"strings"

	"das-foods/internal/service"

	"google.golang.org/genai"
)

// ContentGenerator is satisfied by (*genai.Client).Models.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

type GeminiGenerator struct {
	Models ContentGenerator
}

func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

func NewGeminiGenerator(client *genai.Client) *GeminiGenerator {
	return &GeminiGenerator{Models: client.Models}
}

func (g *GeminiGenerator) Generate(ctx context.Context, req service.GenerationRequest) (string, error) {
	resp, err := g.Models.GenerateContent(ctx, req.Model, genai.Text(req.Prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(req.Temperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   MealSuggestionSchema(),
	})
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("empty response from model")
	}
	return text, nil
}

func courseSchema(description string) *genai.Schema {
	return &genai.Schema{
		Type:        genai.TypeObject,
		Description: description,
		Properties: map[string]*genai.Schema{
			"name":        {Type: genai.TypeString, Description: "Exact name of the menu item."},
			"description": {Type: genai.TypeString, Description: "Short description of the dish."},
		},
		Required: []string{"name", "description"},
	}
}

// MealSuggestionSchema constrains the model to the three-course JSON shape.
func MealSuggestionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"appetizer":           courseSchema("The suggested appetizer."),
			"mainCourse":          courseSchema("The suggested main course."),
			"dessert":             courseSchema("The suggested dessert."),
			"suggestionRationale": {Type: genai.TypeString, Description: "Why the combination works well."},
		},
		Required: []string{"appetizer", "mainCourse", "dessert", "suggestionRationale"},
	}
}

var _ service.SuggestionGenerator = (*GeminiGenerator)(nil)
