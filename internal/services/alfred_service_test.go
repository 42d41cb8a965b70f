package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"batcave.app/batcave/internal/alfred"
	"batcave.app/batcave/internal/constants"
	"batcave.app/batcave/internal/storage/memory"
)

// stubAssistant scripts the generative-AI boundary.
type stubAssistant struct {
	suggestions []alfred.Suggestion
	reply       string
	err         error
	calls       int
	seenTasks   []alfred.TaskContext
}

func (s *stubAssistant) SuggestTasks(ctx context.Context, tasks []alfred.TaskContext) ([]alfred.Suggestion, error) {
	s.calls++
	s.seenTasks = tasks
	return s.suggestions, s.err
}

func (s *stubAssistant) Chat(ctx context.Context, message string, tasks []alfred.TaskContext) (string, error) {
	s.calls++
	s.seenTasks = tasks
	return s.reply, s.err
}

func TestSuggestPassesTaskBoard(t *testing.T) {
	store := memory.NewTaskStore()
	taskService := NewTaskService(store)
	ctx := context.Background()

	_, err := taskService.CreateTask(ctx, "bruce", CreateTaskInput{
		Title:    "Patrol",
		Domain:   constants.DomainFitness,
		Priority: constants.PriorityUrgent,
	})
	if err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}

	stub := &stubAssistant{suggestions: []alfred.Suggestion{{Title: "Stretch", Domain: "fitness"}}}
	service := NewAlfredService(stub, store, nil, 0, time.Second)

	result, err := service.Suggest(ctx, "bruce")
	if err != nil {
		t.Fatalf("suggest failed: %v", err)
	}
	if result.Fallback != "" {
		t.Errorf("unexpected fallback: %q", result.Fallback)
	}
	if len(result.Suggestions) != 1 || result.Suggestions[0].Title != "Stretch" {
		t.Errorf("unexpected suggestions: %+v", result.Suggestions)
	}
	if len(stub.seenTasks) != 1 || stub.seenTasks[0].Title != "Patrol" {
		t.Errorf("assistant did not receive the task board: %+v", stub.seenTasks)
	}
}

func TestSuggestFallbackOnAssistantFailure(t *testing.T) {
	store := memory.NewTaskStore()
	stub := &stubAssistant{err: errors.New("upstream down")}
	service := NewAlfredService(stub, store, nil, 0, time.Second)

	result, err := service.Suggest(context.Background(), "bruce")
	if err != nil {
		t.Fatalf("assistant failure must be recoverable, got error: %v", err)
	}
	if result.Fallback == "" {
		t.Error("expected a fallback message")
	}
	if len(result.Suggestions) != 0 {
		t.Errorf("expected no suggestions, got %+v", result.Suggestions)
	}
}

func TestChatFallbackOnAssistantFailure(t *testing.T) {
	store := memory.NewTaskStore()
	stub := &stubAssistant{err: errors.New("upstream down")}
	service := NewAlfredService(stub, store, nil, 0, time.Second)

	reply, err := service.Chat(context.Background(), "bruce", "status report")
	if err != nil {
		t.Fatalf("assistant failure must be recoverable, got error: %v", err)
	}
	if reply == "" {
		t.Error("expected a fallback reply")
	}
}

func TestChatReturnsAssistantReply(t *testing.T) {
	store := memory.NewTaskStore()
	stub := &stubAssistant{reply: "All quiet, sir."}
	service := NewAlfredService(stub, store, nil, 0, time.Second)

	reply, err := service.Chat(context.Background(), "bruce", "status report")
	if err != nil {
		t.Fatalf("chat failed: %v", err)
	}
	if reply != "All quiet, sir." {
		t.Errorf("unexpected reply: %q", reply)
	}
}
