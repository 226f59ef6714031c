package transcript

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"FactScanner/internal/domain"
	"FactScanner/internal/extract"
	"FactScanner/internal/ports"
)

type fakeStrategy struct {
	name     string
	text     string
	err      error
	attempts int
}

func (f *fakeStrategy) Name() string { return f.name }

func (f *fakeStrategy) Attempt(ctx context.Context, reference string) (domain.AcquiredContent, error) {
	f.attempts++
	if f.err != nil {
		return domain.AcquiredContent{}, f.err
	}
	return domain.AcquiredContent{RawText: f.text, Strategy: f.name}, nil
}

type fakeChat struct {
	response string
	err      error
}

func (f *fakeChat) Complete(ctx context.Context, req ports.ChatRequest) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newTestCascade(chat ports.ChatClient, strategies ...extract.Strategy) *Cascade {
	registry := extract.NewRegistry()
	order := make([]string, 0, len(strategies))
	for _, s := range strategies {
		registry.Register(s)
		order = append(order, s.Name())
	}
	return NewCascade(CascadeDeps{
		Registry: registry,
		Order:    order,
		Chat:     chat,
		Client:   &http.Client{Timeout: 100 * time.Millisecond},
		Timeout:  100 * time.Millisecond,
	})
}

func TestCascadeStopsAtFirstSuccess(t *testing.T) {
	t.Parallel()

	first := &fakeStrategy{name: "first", err: fmt.Errorf("no captions")}
	second := &fakeStrategy{name: "second", text: "Water boils at 100 degrees Celsius at sea level."}
	third := &fakeStrategy{name: "third", text: "should never run"}

	cascade := newTestCascade(nil, first, second, third)

	content, err := cascade.Acquire(context.Background(), "no-id-reference")
	if err != nil {
		t.Fatalf("Acquire error: %v", err)
	}

	if content.Strategy != "second" {
		t.Errorf("strategy descriptor = %q, want second", content.Strategy)
	}
	if first.attempts != 1 || second.attempts != 1 {
		t.Errorf("expected exactly one attempt each, got %d and %d", first.attempts, second.attempts)
	}
	if third.attempts != 0 {
		t.Errorf("third strategy should not run after a success, got %d attempts", third.attempts)
	}
	if content.Title == "" {
		t.Error("title should fall back to a non-empty default")
	}
}

func TestCascadeSkipsEmptyContent(t *testing.T) {
	t.Parallel()

	empty := &fakeStrategy{name: "empty", text: "   "}
	real := &fakeStrategy{name: "real", text: "The Pacific Ocean is the largest ocean on the planet."}

	cascade := newTestCascade(nil, empty, real)

	content, err := cascade.Acquire(context.Background(), "no-id-reference")
	if err != nil {
		t.Fatalf("Acquire error: %v", err)
	}
	if content.Strategy != "real" {
		t.Errorf("blank content should count as failure, got strategy %q", content.Strategy)
	}
}

func TestCascadeGenerativeFallback(t *testing.T) {
	t.Parallel()

	failing := &fakeStrategy{name: "failing", err: fmt.Errorf("unavailable")}
	chat := &fakeChat{response: "Generated sentence one about science. Generated sentence two about history."}

	cascade := newTestCascade(chat, failing)

	content, err := cascade.Acquire(context.Background(), "no-id-reference")
	if err != nil {
		t.Fatalf("Acquire error: %v", err)
	}

	if content.Strategy != StrategyGenerated {
		t.Errorf("strategy = %q, want %q", content.Strategy, StrategyGenerated)
	}
	if content.RawText == "" {
		t.Error("generative fallback should yield non-empty content")
	}
}

func TestCascadeBuiltinFallback(t *testing.T) {
	t.Parallel()

	failing := &fakeStrategy{name: "failing", err: fmt.Errorf("unavailable")}
	chat := &fakeChat{err: fmt.Errorf("oracle down")}

	cascade := newTestCascade(chat, failing)

	content, err := cascade.Acquire(context.Background(), "no-id-reference")
	if err != nil {
		t.Fatalf("Acquire must never fail, got: %v", err)
	}

	if content.Strategy != StrategyBuiltin {
		t.Errorf("strategy = %q, want %q", content.Strategy, StrategyBuiltin)
	}
	if content.RawText != samplePassage {
		t.Error("built-in fallback should return the fixed sample passage")
	}
}

func TestCascadeNoChatClientFallsBackToBuiltin(t *testing.T) {
	t.Parallel()

	failing := &fakeStrategy{name: "failing", err: fmt.Errorf("unavailable")}
	cascade := newTestCascade(nil, failing)

	content, err := cascade.Acquire(context.Background(), "no-id-reference")
	if err != nil {
		t.Fatalf("Acquire error: %v", err)
	}
	if content.Strategy != StrategyBuiltin {
		t.Errorf("strategy = %q, want %q", content.Strategy, StrategyBuiltin)
	}
}

func TestCascadeIgnoresUnknownStrategyNames(t *testing.T) {
	t.Parallel()

	real := &fakeStrategy{name: "real", text: "Mount Everest is the tallest mountain above sea level."}
	registry := extract.NewRegistry()
	registry.Register(real)

	cascade := NewCascade(CascadeDeps{
		Registry: registry,
		Order:    []string{"missing", "real"},
		Client:   &http.Client{Timeout: 100 * time.Millisecond},
		Timeout:  100 * time.Millisecond,
	})

	content, err := cascade.Acquire(context.Background(), "no-id-reference")
	if err != nil {
		t.Fatalf("Acquire error: %v", err)
	}
	if content.Strategy != "real" {
		t.Errorf("strategy = %q, want real", content.Strategy)
	}
}
