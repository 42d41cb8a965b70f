package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/rueidis"

	"batcave.app/batcave/internal/alfred"
	"batcave.app/batcave/internal/storage"
)

// AssistantClient is the generative-AI boundary. Failures from it are always
// recoverable: the service answers with a fallback instead of propagating.
type AssistantClient interface {
	SuggestTasks(ctx context.Context, tasks []alfred.TaskContext) ([]alfred.Suggestion, error)
	Chat(ctx context.Context, message string, tasks []alfred.TaskContext) (string, error)
}

const suggestionFallback = "I could not reach the suggestion engine just now, " +
	"Master Wayne. Might I propose reviewing your pending tasks in the meantime?"

const chatFallback = "My apologies, I appear to be indisposed. Do try again shortly."

// AlfredService wraps the assistant with the task board, a Redis response
// cache and a hard timeout.
type AlfredService struct {
	client   AssistantClient
	tasks    storage.TaskStore
	redis    rueidis.Client
	cacheTTL time.Duration
	timeout  time.Duration
}

// SuggestionResult carries either suggestions or a fallback message, never
// both.
type SuggestionResult struct {
	Suggestions []alfred.Suggestion `json:"suggestions,omitempty"`
	Fallback    string              `json:"fallback,omitempty"`
	Cached      bool                `json:"cached,omitempty"`
}

// NewAlfredService builds the assistant service. redis may be nil, in which
// case caching is skipped.
func NewAlfredService(
	client AssistantClient,
	tasks storage.TaskStore,
	redis rueidis.Client,
	cacheTTL time.Duration,
	timeout time.Duration,
) *AlfredService {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &AlfredService{
		client:   client,
		tasks:    tasks,
		redis:    redis,
		cacheTTL: cacheTTL,
		timeout:  timeout,
	}
}

func (s *AlfredService) Suggest(ctx context.Context, userID string) (*SuggestionResult, error) {
	cacheKey := "alfred:suggestions:" + userID

	if cached, ok := s.cachedSuggestions(ctx, cacheKey); ok {
		return &SuggestionResult{Suggestions: cached, Cached: true}, nil
	}

	board, err := s.taskBoard(ctx, userID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	suggestions, err := s.client.SuggestTasks(ctx, board)
	if err != nil {
		log.Printf("alfred: suggestion request for user %s failed: %v", userID, err)
		return &SuggestionResult{Fallback: suggestionFallback}, nil
	}

	s.cacheSuggestions(ctx, cacheKey, suggestions)
	return &SuggestionResult{Suggestions: suggestions}, nil
}

func (s *AlfredService) Chat(ctx context.Context, userID, message string) (string, error) {
	board, err := s.taskBoard(ctx, userID)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.client.Chat(ctx, message, board)
	if err != nil {
		log.Printf("alfred: chat request for user %s failed: %v", userID, err)
		return chatFallback, nil
	}
	return reply, nil
}

func (s *AlfredService) taskBoard(ctx context.Context, userID string) ([]alfred.TaskContext, error) {
	tasks, err := s.tasks.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	board := make([]alfred.TaskContext, 0, len(tasks))
	for _, t := range tasks {
		board = append(board, alfred.TaskContext{
			Title:          t.Title,
			Domain:         string(t.Domain),
			Priority:       string(t.Priority),
			EstimatedHours: t.EstimatedHours,
			IsCompleted:    t.IsCompleted,
		})
	}
	return board, nil
}

func (s *AlfredService) cachedSuggestions(ctx context.Context, key string) ([]alfred.Suggestion, bool) {
	if s.redis == nil {
		return nil, false
	}

	resp := s.redis.Do(ctx, s.redis.B().Get().Key(key).Build())
	if err := resp.Error(); err != nil {
		if !rueidis.IsRedisNil(err) {
			log.Printf("alfred: cache read failed: %v", err)
		}
		return nil, false
	}

	raw, err := resp.ToString()
	if err != nil {
		return nil, false
	}

	var suggestions []alfred.Suggestion
	if err := json.Unmarshal([]byte(raw), &suggestions); err != nil {
		return nil, false
	}
	return suggestions, true
}

func (s *AlfredService) cacheSuggestions(ctx context.Context, key string, suggestions []alfred.Suggestion) {
	if s.redis == nil || s.cacheTTL <= 0 {
		return
	}

	payload, err := json.Marshal(suggestions)
	if err != nil {
		return
	}

	cmd := s.redis.B().Set().Key(key).Value(string(payload)).Ex(s.cacheTTL).Build()
	if err := s.redis.Do(ctx, cmd).Error(); err != nil {
		log.Printf("alfred: cache write failed: %v", err)
	}
}
