package extract

import (
	"context"
	"fmt"

	"FactScanner/internal/domain"
)

// Strategy captures a single self-contained way of obtaining transcript
// content for a reference (direct timed-text, normalized id, etc.).
type Strategy interface {
	Name() string
	Attempt(ctx context.Context, reference string) (domain.AcquiredContent, error)
}

// Registry keeps a mapping from strategy names to their implementations so
// the cascade order stays a pure configuration concern.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{strategies: map[string]Strategy{}}
}

// Register adds or replaces a strategy implementation.
func (r *Registry) Register(strategy Strategy) {
	if r.strategies == nil {
		r.strategies = map[string]Strategy{}
	}
	r.strategies[strategy.Name()] = strategy
}

// Resolve returns a strategy by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Strategy, error) {
	if strategy, ok := r.strategies[name]; ok {
		return strategy, nil
	}
	return nil, fmt.Errorf("strategy %s is not registered", name)
}
