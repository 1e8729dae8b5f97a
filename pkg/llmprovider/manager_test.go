package llmprovider

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"voice-task-manager/pkg/log"
)

const (
	extractReply  = `{"tasks":[{"taskName":"Buy milk","description":"buy milk on Friday","date":"2025-01-17","time":null,"tags":[]}]}`
	categoryReply = `{"suggestedCategory":"shopping","confidence":"high"}`
)

// scriptedProvider fails its first `failures` calls, then answers with reply.
// A negative failures value fails forever.
type scriptedProvider struct {
	name     string
	model    string
	failures int
	failWith error
	reply    string
	calls    int
	requests []*Request
}

func (p *scriptedProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	p.calls++
	p.requests = append(p.requests, req)
	if p.failures < 0 || p.calls <= p.failures {
		if p.failWith != nil {
			return nil, p.failWith
		}
		return nil, errors.New(p.name + " unavailable")
	}
	return &Response{
		Content:      Message{Role: "model", Parts: []Part{{Text: p.reply}}},
		ProviderName: p.name,
		ModelName:    p.model,
		Usage:        &Usage{InputTokens: 40, OutputTokens: 20, TotalTokens: 60},
	}, nil
}

func (p *scriptedProvider) Name() string  { return p.name }
func (p *scriptedProvider) Model() string { return p.model }

// blockingProvider waits for the caller's deadline.
type blockingProvider struct{ calls int }

func (p *blockingProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	p.calls++
	<-ctx.Done()
	return nil, ctx.Err()
}

func (p *blockingProvider) Name() string  { return "gemini" }
func (p *blockingProvider) Model() string { return "gemini-2.5-flash" }

// recordingLogger keeps the first argument of Info and Warn calls.
type recordingLogger struct {
	log.Logger
	infos []string
	warns []string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{Logger: log.NewNop()}
}

func (l *recordingLogger) Info(ctx context.Context, arg ...any) {
	if msg, ok := arg[0].(string); ok {
		l.infos = append(l.infos, msg)
	}
}

func (l *recordingLogger) Warn(ctx context.Context, arg ...any) {
	if msg, ok := arg[0].(string); ok {
		l.warns = append(l.warns, msg)
	}
}

func extractRequest() *Request {
	return &Request{
		SystemInstruction: &Message{Role: "system", Parts: []Part{{Text: "You convert a spoken to-do utterance into structured tasks."}}},
		Messages:          []Message{UserText("Anchor date: 2025-01-15\nUtterance: buy milk on Friday")},
		Temperature:       0.1,
		MaxTokens:         2048,
		JSONOutput:        true,
	}
}

func categoryRequest() *Request {
	return &Request{
		SystemInstruction: &Message{Role: "system", Parts: []Part{{Text: "You file a task into exactly one of the given categories."}}},
		Messages:          []Message{UserText("Categories: work, shopping\nTask: buy milk")},
		MaxTokens:         256,
		JSONOutput:        true,
	}
}

func TestManager_ExtractionRequestPassesThrough(t *testing.T) {
	gemini := &scriptedProvider{name: "gemini", model: "gemini-2.5-flash", reply: extractReply}
	l := newRecordingLogger()
	m := NewManager([]Provider{gemini}, &Config{RetryAttempts: 1}, l)

	req := extractRequest()
	resp, err := m.GenerateContent(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Text() != extractReply {
		t.Errorf("expected extraction payload, got %q", resp.Text())
	}
	if len(gemini.requests) != 1 || gemini.requests[0] != req {
		t.Fatalf("expected the request to reach the provider unchanged")
	}
	if !gemini.requests[0].JSONOutput {
		t.Errorf("expected JSON output to stay requested")
	}
	if len(l.infos) != 1 || len(l.warns) != 0 {
		t.Errorf("expected one success log and no warnings, got infos=%v warns=%v", l.infos, l.warns)
	}
}

func TestManager_Retries(t *testing.T) {
	tests := []struct {
		name      string
		failures  int
		attempts  int
		wantCalls int
		wantErr   bool
	}{
		{name: "recovers on second attempt", failures: 1, attempts: 3, wantCalls: 2},
		{name: "gives up after configured attempts", failures: -1, attempts: 2, wantCalls: 2, wantErr: true},
		{name: "zero attempts still calls once", failures: 0, attempts: 0, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gemini := &scriptedProvider{name: "gemini", model: "gemini-2.5-flash", failures: tt.failures, reply: categoryReply}
			m := NewManager([]Provider{gemini}, &Config{RetryAttempts: tt.attempts, RetryDelay: time.Millisecond}, newRecordingLogger())

			resp, err := m.GenerateContent(context.Background(), categoryRequest())

			if gemini.calls != tt.wantCalls {
				t.Errorf("expected %d calls, got %d", tt.wantCalls, gemini.calls)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrAllProvidersFailed) {
					t.Errorf("expected ErrAllProvidersFailed, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Text() != categoryReply {
				t.Errorf("expected category payload, got %q", resp.Text())
			}
		})
	}
}

func TestManager_Fallback(t *testing.T) {
	tests := []struct {
		name          string
		fallback      bool
		wantProvider  string
		wantQwenCalls int
	}{
		{name: "enabled uses the next provider", fallback: true, wantProvider: "qwen", wantQwenCalls: 1},
		{name: "disabled stops at the first provider", fallback: false, wantQwenCalls: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gemini := &scriptedProvider{name: "gemini", model: "gemini-2.5-flash", failures: -1}
			qwen := &scriptedProvider{name: "qwen", model: "qwen-plus", reply: categoryReply}
			l := newRecordingLogger()
			m := NewManager([]Provider{gemini, qwen}, &Config{FallbackEnabled: tt.fallback, RetryAttempts: 1}, l)

			resp, err := m.GenerateContent(context.Background(), categoryRequest())

			if qwen.calls != tt.wantQwenCalls {
				t.Errorf("expected %d qwen calls, got %d", tt.wantQwenCalls, qwen.calls)
			}
			if len(l.warns) != 1 {
				t.Errorf("expected the gemini failure to be logged once, got %v", l.warns)
			}

			if tt.wantProvider == "" {
				var perr *ProviderError
				if !errors.As(err, &perr) || perr.Provider != "gemini" {
					t.Fatalf("expected a gemini ProviderError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.ProviderName != tt.wantProvider {
				t.Errorf("expected %s to answer, got %s", tt.wantProvider, resp.ProviderName)
			}
		})
	}
}

func TestManager_AllFailedReportsLastProvider(t *testing.T) {
	gemini := &scriptedProvider{name: "gemini", model: "gemini-2.5-flash", failures: -1}
	qwen := &scriptedProvider{name: "qwen", model: "qwen-plus", failures: -1}
	m := NewManager([]Provider{gemini, qwen}, &Config{FallbackEnabled: true, RetryAttempts: 1}, newRecordingLogger())

	_, err := m.GenerateContent(context.Background(), extractRequest())

	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("expected ErrAllProvidersFailed, got %v", err)
	}
	var perr *ProviderError
	if !errors.As(err, &perr) || perr.Provider != "qwen" {
		t.Errorf("expected the last failure to come from qwen, got %v", err)
	}
	if !strings.Contains(err.Error(), "qwen unavailable") {
		t.Errorf("expected the provider message in %q", err.Error())
	}
}

func TestManager_RejectsUnusableInput(t *testing.T) {
	if _, err := NewManager(nil, &Config{}, newRecordingLogger()).GenerateContent(context.Background(), extractRequest()); !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
	}

	gemini := &scriptedProvider{name: "gemini", model: "gemini-2.5-flash", reply: extractReply}
	m := NewManager([]Provider{gemini}, &Config{RetryAttempts: 1}, newRecordingLogger())

	for _, req := range []*Request{nil, {SystemInstruction: &Message{Role: "system"}}} {
		if _, err := m.GenerateContent(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("expected ErrInvalidRequest, got %v", err)
		}
	}
	if gemini.calls != 0 {
		t.Errorf("expected no provider calls, got %d", gemini.calls)
	}
}

func TestManager_GlobalTimeoutStopsTheChain(t *testing.T) {
	slow := &blockingProvider{}
	qwen := &scriptedProvider{name: "qwen", model: "qwen-plus", reply: extractReply}
	m := NewManager([]Provider{slow, qwen}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		MaxTotalTimeout: 20 * time.Millisecond,
	}, newRecordingLogger())

	_, err := m.GenerateContent(context.Background(), extractRequest())

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if qwen.calls != 0 {
		t.Errorf("expected the chain to stop after the deadline, got %d qwen calls", qwen.calls)
	}
}

func TestManager_CircuitBreaker(t *testing.T) {
	gemini := &scriptedProvider{name: "gemini", model: "gemini-2.5-flash", failures: -1}
	l := newRecordingLogger()
	m := NewManager([]Provider{gemini}, &Config{
		RetryAttempts:    1,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
	}, l)

	for i := 0; i < 2; i++ {
		if _, err := m.GenerateContent(context.Background(), extractRequest()); errors.Is(err, ErrCircuitOpen) {
			t.Fatalf("call %d: breaker opened too early", i+1)
		}
	}

	_, err := m.GenerateContent(context.Background(), extractRequest())
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen after two failures, got %v", err)
	}
	if gemini.calls != 2 {
		t.Errorf("expected the open breaker to skip gemini, got %d calls", gemini.calls)
	}
	if len(l.infos) != 1 || l.infos[0] != "LLM circuit breaker state changed" {
		t.Errorf("expected one state change log, got %v", l.infos)
	}
}

func TestManager_CancellationDoesNotTripBreaker(t *testing.T) {
	gemini := &scriptedProvider{name: "gemini", model: "gemini-2.5-flash", failures: -1, failWith: context.Canceled}
	m := NewManager([]Provider{gemini}, &Config{RetryAttempts: 1, FailureThreshold: 1, OpenTimeout: time.Minute}, newRecordingLogger())

	for i := 0; i < 3; i++ {
		_, err := m.GenerateContent(context.Background(), categoryRequest())
		if errors.Is(err, ErrCircuitOpen) {
			t.Fatalf("call %d: cancellation opened the breaker", i+1)
		}
	}
	if gemini.calls != 3 {
		t.Errorf("expected every call to reach gemini, got %d", gemini.calls)
	}
}

func TestManager_BreakersArePerModel(t *testing.T) {
	flash := &scriptedProvider{name: "gemini", model: "gemini-2.5-flash", failures: -1}
	pro := &scriptedProvider{name: "gemini", model: "gemini-2.5-pro", reply: extractReply}
	m := NewManager([]Provider{flash, pro}, &Config{
		FallbackEnabled:  true,
		RetryAttempts:    1,
		FailureThreshold: 1,
		OpenTimeout:      time.Minute,
	}, newRecordingLogger())

	for i := 0; i < 2; i++ {
		resp, err := m.GenerateContent(context.Background(), extractRequest())
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i+1, err)
		}
		if resp.ModelName != "gemini-2.5-pro" {
			t.Errorf("call %d: expected the pro model to answer, got %s", i+1, resp.ModelName)
		}
	}
	if flash.calls != 1 {
		t.Errorf("expected the flash breaker to open after one failure, got %d calls", flash.calls)
	}
	if pro.calls != 2 {
		t.Errorf("expected pro to serve both calls, got %d", pro.calls)
	}
}

func TestManager_Available(t *testing.T) {
	var nilManager *Manager
	if nilManager.Available() {
		t.Error("expected a nil manager to be unavailable")
	}
	if NewManager(nil, &Config{}, newRecordingLogger()).Available() {
		t.Error("expected a manager without providers to be unavailable")
	}
	gemini := &scriptedProvider{name: "gemini", model: "gemini-2.5-flash"}
	if !NewManager([]Provider{gemini}, &Config{}, newRecordingLogger()).Available() {
		t.Error("expected a manager with a provider to be available")
	}
}
