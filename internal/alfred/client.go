// Package alfred talks to the hosted language-model API behind the BATCAVE
// assistant. The wire protocol is the chat-completions shape; callers treat
// the whole package as a black box from structured input to text or JSON and
// must handle failure as recoverable.
package alfred

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"batcave.app/batcave/internal/constants"
)

const (
	defaultBaseURL = "https://api.openai.com/v1/chat/completions"
	defaultModel   = "gpt-4o-mini"
	defaultTimeout = 20 * time.Second
)

const systemPrompt = "You are ALFRED, the unflappable butler of the BATCAVE " +
	"productivity system. You help the user plan tasks across the academic, " +
	"fitness, creative, social and maintenance domains. Be concise, dry and " +
	"encouraging."

// TaskContext is the slice of a task the model is allowed to see.
type TaskContext struct {
	Title          string  `json:"title"`
	Domain         string  `json:"domain"`
	Priority       string  `json:"priority"`
	EstimatedHours float64 `json:"estimated_hours"`
	IsCompleted    bool    `json:"is_completed"`
}

// Suggestion is one proposed task parsed from the model's JSON output.
type Suggestion struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Domain         string  `json:"domain"`
	Priority       string  `json:"priority"`
	EstimatedHours float64 `json:"estimated_hours"`
	Reasoning      string  `json:"reasoning"`
}

type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

func NewClient(apiKey, baseURL, model string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

// SuggestTasks asks the model for new task proposals given the user's current
// board. A malformed or empty reply is an error, never a panic; the caller
// decides the fallback.
func (c *Client) SuggestTasks(ctx context.Context, tasks []TaskContext) ([]Suggestion, error) {
	board, err := json.Marshal(tasks)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(
		"Here are the user's current tasks as JSON: %s\n"+
			"Suggest up to 3 new tasks. Respond with ONLY a JSON array; each "+
			"element has title, description, domain (%s), priority (%s), "+
			"estimated_hours (0.5-24 in half-hour steps) and reasoning.",
		board, domainList(), priorityList(),
	)

	content, err := c.complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var suggestions []Suggestion
	if err := json.Unmarshal([]byte(extractJSONArray(content)), &suggestions); err != nil {
		return nil, fmt.Errorf("malformed suggestion payload: %w", err)
	}
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("empty suggestion list")
	}
	return suggestions, nil
}

// Chat sends a free-form message with the task board as context and returns
// the assistant's text.
func (c *Client) Chat(ctx context.Context, message string, tasks []TaskContext) (string, error) {
	board, err := json.Marshal(tasks)
	if err != nil {
		return "", err
	}
	prompt := fmt.Sprintf("The user's current tasks as JSON: %s\n\nUser says: %s", board, message)
	return c.complete(ctx, prompt)
}

func (c *Client) complete(ctx context.Context, userContent string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("ALFRED_API_KEY not set")
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent},
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("assistant API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("assistant API returned status %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("malformed assistant response: %w", err)
	}
	if len(chatResp.Choices) == 0 || strings.TrimSpace(chatResp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("assistant returned no content")
	}
	return chatResp.Choices[0].Message.Content, nil
}

// extractJSONArray trims any prose the model wrapped around its JSON.
func extractJSONArray(s string) string {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

func domainList() string {
	return strings.Join([]string{
		string(constants.DomainAcademic),
		string(constants.DomainFitness),
		string(constants.DomainCreative),
		string(constants.DomainSocial),
		string(constants.DomainMaintenance),
	}, "|")
}

func priorityList() string {
	return strings.Join([]string{
		string(constants.PriorityLow),
		string(constants.PriorityMedium),
		string(constants.PriorityHigh),
		string(constants.PriorityUrgent),
	}, "|")
}
