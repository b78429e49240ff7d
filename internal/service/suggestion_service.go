package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"das-foods/internal/domain"

	"github.com/rs/zerolog/log"
)

type SuggestionSettings struct {
	APIKey      string
	Model       string
	Timeout     time.Duration
	Temperature float32
	Currency    string
}

type SuggestionService struct {
	catalog   CatalogRepository
	generator SuggestionGenerator
	guard     InFlightGuard
	settings  SuggestionSettings
}

func NewSuggestionService(catalog CatalogRepository, generator SuggestionGenerator, guard InFlightGuard, settings SuggestionSettings) *SuggestionService {
	if settings.Timeout <= 0 {
		settings.Timeout = 20 * time.Second
	}
	return &SuggestionService{
		catalog:   catalog,
		generator: generator,
		guard:     guard,
		settings:  settings,
	}
}

// Enabled reports whether a credential and a generator are available.
func (s *SuggestionService) Enabled() bool {
	return s.settings.APIKey != "" && s.generator != nil
}

func (s *SuggestionService) Suggest(ctx context.Context, session, preference string) (*domain.MealSuggestion, error) {
	if !s.Enabled() {
		return nil, ErrSuggestionNotConfigured
	}
	preference = strings.TrimSpace(preference)
	if preference == "" {
		return nil, fmt.Errorf("%w: enter a preference, e.g. 'light and healthy'", ErrValidation)
	}

	if s.guard != nil {
		key := InFlightKey(session)
		acquired, err := s.guard.Acquire(ctx, key, s.settings.Timeout+5*time.Second)
		if err != nil {
			log.Warn().Err(err).Msg("suggestion guard unavailable, continuing without it")
		} else if !acquired {
			return nil, ErrSuggestionInProgress
		} else {
			defer func() {
				releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
				defer cancel()
				if err := s.guard.Release(releaseCtx, key); err != nil {
					log.Warn().Err(err).Str("key", key).Msg("failed to release suggestion guard")
				}
			}()
		}
	}

	menu := s.catalog.ListItems()
	ctx, cancel := context.WithTimeout(ctx, s.settings.Timeout)
	defer cancel()

	raw, err := s.generator.Generate(ctx, GenerationRequest{
		Model:       s.settings.Model,
		Prompt:      BuildSuggestionPrompt(menu, preference, s.settings.Currency),
		Temperature: s.settings.Temperature,
	})
	if err != nil {
		log.Error().Err(err).Str("model", s.settings.Model).Msg("meal suggestion request failed")
		return nil, ErrSuggestionFailed
	}

	suggestion, err := ParseSuggestion(raw, menu)
	if err != nil {
		log.Error().Err(err).Msg("meal suggestion response rejected")
		return nil, ErrSuggestionInvalid
	}
	return suggestion, nil
}

func InFlightKey(session string) string {
	return "suggestion:inflight:" + session
}

func BuildSuggestionPrompt(menu []domain.MenuItem, preference, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Based on the following restaurant menu (prices are in %s), suggest a 3-course meal (Appetizer, Main Course, Dessert) for a customer with the following preference: %q.\n\n", currency, preference)
	b.WriteString("Menu:\n")
	for _, item := range menu {
		fmt.Fprintf(&b, "- %s (%s): %s\n", item.Name, item.Category, FormatPrice(item.Price))
	}
	b.WriteString("\nPlease provide your suggestion in a structured JSON format. ")
	b.WriteString("The response should be an object with three keys: 'appetizer', 'mainCourse', and 'dessert'. ")
	b.WriteString("Each key should correspond to an object containing the 'name' and 'description' of the suggested menu item. ")
	b.WriteString("Also add a 'suggestionRationale' that explains why this combination works well.")
	return b.String()
}

// FormatPrice renders minor units as a major-unit decimal, e.g. 1050 -> "10.50".
func FormatPrice(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}

// ParseSuggestion decodes the model output and checks every course against the menu.
func ParseSuggestion(raw string, menu []domain.MenuItem) (*domain.MealSuggestion, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimSuffix(strings.TrimPrefix(raw, "```"), "```")

	var suggestion domain.MealSuggestion
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &suggestion); err != nil {
		return nil, fmt.Errorf("decode suggestion: %w", err)
	}

	onMenu := make(map[string]bool, len(menu))
	for _, item := range menu {
		onMenu[strings.ToLower(strings.TrimSpace(item.Name))] = true
	}

	courses := []struct {
		label  string
		course domain.Course
	}{
		{"appetizer", suggestion.Appetizer},
		{"mainCourse", suggestion.MainCourse},
		{"dessert", suggestion.Dessert},
	}
	for _, c := range courses {
		name := strings.ToLower(strings.TrimSpace(c.course.Name))
		if name == "" {
			return nil, fmt.Errorf("%s is missing", c.label)
		}
		if !onMenu[name] {
			return nil, fmt.Errorf("%s %q is not on the menu", c.label, c.course.Name)
		}
	}
	return &suggestion, nil
}
