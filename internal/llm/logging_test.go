package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/abhisek/toanvui/internal/logging"
	"github.com/abhisek/toanvui/internal/store"
)

// fakeEventRepo keeps appended events in memory.
type fakeEventRepo struct {
	mu        sync.Mutex
	events    []store.LLMRequestEventData
	appendErr error
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.appendErr != nil {
		return f.appendErr
	}
	f.events = append(f.events, data)
	return nil
}

func (f *fakeEventRepo) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (f *fakeEventRepo) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func (f *fakeEventRepo) LLMUsageByModel(context.Context) ([]store.LLMUsage, error) {
	return nil, nil
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 3},
	})
	p := WithLogging(mock, ProviderMock, repo)

	ctx := logging.WithRequestID(WithPurpose(context.Background(), PurposeProblemGen))
	if _, err := p.Generate(ctx, Request{System: "sys", Prompt: "2+2?"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if !e.Success || e.Provider != ProviderMock || e.Model != "mock" {
		t.Errorf("unexpected event: %+v", e)
	}
	if e.Purpose != PurposeProblemGen {
		t.Errorf("purpose = %q", e.Purpose)
	}
	if e.RequestID == "" || e.RequestID != logging.RequestID(ctx) {
		t.Errorf("request id = %q, want the context's id", e.RequestID)
	}
	if e.InputTokens != 12 || e.OutputTokens != 3 {
		t.Errorf("tokens = %d/%d", e.InputTokens, e.OutputTokens)
	}
	if !strings.Contains(e.RequestBody, "[user]\n2+2?") || !strings.Contains(e.RequestBody, "[system]\nsys") {
		t.Errorf("request body = %q", e.RequestBody)
	}
	if e.ResponseBody != `{"ok":true}` {
		t.Errorf("response body = %q", e.ResponseBody)
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	p := WithLogging(mock, ProviderMock, repo)

	_, err := p.Generate(context.Background(), Request{Prompt: "x"})
	if err == nil {
		t.Fatal("expected error to pass through")
	}
	if len(repo.events) != 1 || repo.events[0].Success {
		t.Fatalf("expected one failed event, got %+v", repo.events)
	}
	if !strings.Contains(repo.events[0].ErrorMessage, "down") {
		t.Errorf("error message = %q", repo.events[0].ErrorMessage)
	}
}

func TestLoggingProvider_AppendFailureDoesNotFailRequest(t *testing.T) {
	repo := &fakeEventRepo{appendErr: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, ProviderMock, repo)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSerializeRequest_IncludesSchema(t *testing.T) {
	out := serializeRequest(Request{Prompt: "p", Schema: testSchema()})
	if !strings.Contains(out, "[schema: test-object]") {
		t.Fatalf("schema header missing: %q", out)
	}
	if strings.Contains(out, "[system]") {
		t.Fatalf("empty system should be omitted: %q", out)
	}
}
