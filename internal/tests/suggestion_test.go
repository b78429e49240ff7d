package tests

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"das-foods/internal/domain"
	"das-foods/internal/mocks"
	"das-foods/internal/service"
	"das-foods/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validSuggestion = `{
	"appetizer": {"name": "Caesar Salad", "description": "Crisp and light."},
	"mainCourse": {"name": "grilled salmon", "description": "Lean protein."},
	"dessert": {"name": "Tiramisu", "description": "A small sweet finish."},
	"suggestionRationale": "Light to rich, ending on coffee."
}`

func suggestionSettings() service.SuggestionSettings {
	return service.SuggestionSettings{
		APIKey:      "test-key",
		Model:       "gemini-2.5-flash",
		Timeout:     time.Second,
		Temperature: 0.8,
		Currency:    "INR",
	}
}

func TestSuggestionService_NotConfigured(t *testing.T) {
	generator := mocks.NewSuggestionGenerator(t)
	guard := mocks.NewInFlightGuard(t)
	catalog := storage.NewMemoryCatalog(service.SeedMenu())

	settings := suggestionSettings()
	settings.APIKey = ""
	svc := service.NewSuggestionService(catalog, generator, guard, settings)

	assert.False(t, svc.Enabled())
	_, err := svc.Suggest(context.Background(), "s1", "light")
	assert.ErrorIs(t, err, service.ErrSuggestionNotConfigured)

	noGenerator := service.NewSuggestionService(catalog, nil, guard, suggestionSettings())
	_, err = noGenerator.Suggest(context.Background(), "s1", "light")
	assert.ErrorIs(t, err, service.ErrSuggestionNotConfigured)

	generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	guard.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything, mock.Anything)
}

func TestSuggestionService_Suggest(t *testing.T) {
	key := service.InFlightKey("s1")
	ttl := 6 * time.Second

	tests := []struct {
		name          string
		preference    string
		prepareMocks  func(*mocks.SuggestionGenerator, *mocks.InFlightGuard)
		expectedError error
	}{
		{
			name:       "success",
			preference: "light and healthy",
			prepareMocks: func(generator *mocks.SuggestionGenerator, guard *mocks.InFlightGuard) {
				guard.On("Acquire", mock.Anything, key, ttl).Return(true, nil).Once()
				generator.On("Generate", mock.Anything, mock.MatchedBy(func(req service.GenerationRequest) bool {
					return req.Model == "gemini-2.5-flash" && req.Temperature == 0.8 &&
						strings.Contains(req.Prompt, `"light and healthy"`) &&
						strings.Contains(req.Prompt, "- Grilled Salmon (Main Courses): 15.00")
				})).Return("```json\n"+validSuggestion+"\n```", nil).Once()
				guard.On("Release", mock.Anything, key).Return(nil).Once()
			},
		},
		{
			name:          "empty_preference",
			preference:    "   ",
			prepareMocks:  func(*mocks.SuggestionGenerator, *mocks.InFlightGuard) {},
			expectedError: service.ErrValidation,
		},
		{
			name:       "already_in_flight",
			preference: "spicy",
			prepareMocks: func(generator *mocks.SuggestionGenerator, guard *mocks.InFlightGuard) {
				guard.On("Acquire", mock.Anything, key, ttl).Return(false, nil).Once()
			},
			expectedError: service.ErrSuggestionInProgress,
		},
		{
			name:       "generator_error",
			preference: "spicy",
			prepareMocks: func(generator *mocks.SuggestionGenerator, guard *mocks.InFlightGuard) {
				guard.On("Acquire", mock.Anything, key, ttl).Return(true, nil).Once()
				generator.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded")).Once()
				guard.On("Release", mock.Anything, key).Return(nil).Once()
			},
			expectedError: service.ErrSuggestionFailed,
		},
		{
			name:       "dish_not_on_menu",
			preference: "spicy",
			prepareMocks: func(generator *mocks.SuggestionGenerator, guard *mocks.InFlightGuard) {
				guard.On("Acquire", mock.Anything, key, ttl).Return(true, nil).Once()
				generator.On("Generate", mock.Anything, mock.Anything).
					Return(strings.Replace(validSuggestion, "Tiramisu", "Baklava", 1), nil).Once()
				guard.On("Release", mock.Anything, key).Return(nil).Once()
			},
			expectedError: service.ErrSuggestionInvalid,
		},
		{
			name:       "guard_unavailable",
			preference: "spicy",
			prepareMocks: func(generator *mocks.SuggestionGenerator, guard *mocks.InFlightGuard) {
				guard.On("Acquire", mock.Anything, key, ttl).Return(false, errors.New("redis down")).Once()
				generator.On("Generate", mock.Anything, mock.Anything).Return(validSuggestion, nil).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			generator := mocks.NewSuggestionGenerator(t)
			guard := mocks.NewInFlightGuard(t)
			testCase.prepareMocks(generator, guard)

			svc := service.NewSuggestionService(storage.NewMemoryCatalog(service.SeedMenu()), generator, guard, suggestionSettings())

			suggestion, err := svc.Suggest(context.Background(), "s1", testCase.preference)
			if testCase.expectedError != nil {
				assert.ErrorIs(t, err, testCase.expectedError)
				assert.Nil(t, suggestion)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Caesar Salad", suggestion.Appetizer.Name)
			assert.Equal(t, "Tiramisu", suggestion.Dessert.Name)
			assert.NotEmpty(t, suggestion.SuggestionRationale)
		})
	}
}

type blockingGenerator struct {
	started chan struct{}
	release chan struct{}
}

func (g *blockingGenerator) Generate(ctx context.Context, _ service.GenerationRequest) (string, error) {
	close(g.started)
	select {
	case <-g.release:
		return validSuggestion, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func TestSuggestionService_OneRequestPerSession(t *testing.T) {
	generator := &blockingGenerator{started: make(chan struct{}), release: make(chan struct{})}
	settings := suggestionSettings()
	settings.Timeout = 5 * time.Second
	svc := service.NewSuggestionService(storage.NewMemoryCatalog(service.SeedMenu()), generator, storage.NewMemoryGuard(), settings)

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, firstErr = svc.Suggest(context.Background(), "s1", "anything")
	}()

	<-generator.started
	_, err := svc.Suggest(context.Background(), "s1", "anything")
	assert.ErrorIs(t, err, service.ErrSuggestionInProgress)

	close(generator.release)
	wg.Wait()
	assert.NoError(t, firstErr)
}

func TestSuggestionService_TimeoutCancelsGeneration(t *testing.T) {
	generator := &blockingGenerator{started: make(chan struct{}), release: make(chan struct{})}
	settings := suggestionSettings()
	settings.Timeout = 20 * time.Millisecond
	svc := service.NewSuggestionService(storage.NewMemoryCatalog(service.SeedMenu()), generator, storage.NewMemoryGuard(), settings)

	_, err := svc.Suggest(context.Background(), "s1", "anything")
	assert.ErrorIs(t, err, service.ErrSuggestionFailed)
}

func TestParseSuggestion(t *testing.T) {
	menu := service.SeedMenu()

	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "plain_json", raw: validSuggestion},
		{name: "fenced_json", raw: "```json\n" + validSuggestion + "\n```"},
		{name: "not_json", raw: "Try the salmon!", wantErr: true},
		{name: "missing_dessert", raw: `{"appetizer":{"name":"Bruschetta"},"mainCourse":{"name":"Grilled Salmon"}}`, wantErr: true},
		{name: "unknown_main", raw: strings.Replace(validSuggestion, "grilled salmon", "Lobster", 1), wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			suggestion, err := service.ParseSuggestion(testCase.raw, menu)
			if testCase.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.Course{Name: "grilled salmon", Description: "Lean protein."}, suggestion.MainCourse)
		})
	}
}

func TestBuildSuggestionPrompt(t *testing.T) {
	prompt := service.BuildSuggestionPrompt(service.SeedMenu(), "vegetarian", "INR")

	assert.Contains(t, prompt, "prices are in INR")
	assert.Contains(t, prompt, `preference: "vegetarian"`)
	assert.Contains(t, prompt, "- Margherita Pizza (Main Courses): 10.50\n")
	assert.Contains(t, prompt, "- Iced Tea (Drinks): 2.50\n")
	assert.Contains(t, prompt, "'suggestionRationale'")
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "10.50", service.FormatPrice(1050))
	assert.Equal(t, "0.05", service.FormatPrice(5))
	assert.Equal(t, "0.00", service.FormatPrice(0))
	assert.Equal(t, "-2.50", service.FormatPrice(-250))
}
