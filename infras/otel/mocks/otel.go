// Package mocks provides an in-memory tracer for tests. Scopes record the
// errors traced through them so tests can assert on failure paths.
package mocks

import (
	"context"
	"sync"

	"choreboard/infras/otel"
)

type Otel struct {
	mu     sync.Mutex
	scopes []*Scope
}

func NewOtel() *Otel {
	return &Otel{}
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	defer o.mu.Unlock()

	scope := &Scope{Name: spanName, Attributes: map[string]any{}}
	o.scopes = append(o.scopes, scope)

	return ctx, scope
}

func (o *Otel) Shutdown(context.Context) error {
	return nil
}

// Errors returns every error traced by any scope, in order.
func (o *Otel) Errors() []error {
	o.mu.Lock()
	defer o.mu.Unlock()

	var errs []error
	for _, scope := range o.scopes {
		errs = append(errs, scope.Errors...)
	}

	return errs
}

type Scope struct {
	Name       string
	Ended      bool
	Errors     []error
	Attributes map[string]any
}

func (s *Scope) End() {
	s.Ended = true
}

func (s *Scope) TraceError(err error) {
	if err != nil {
		s.Errors = append(s.Errors, err)
	}
}

func (s *Scope) TraceIfError(err error) {
	s.TraceError(err)
}

func (s *Scope) AddEvent(string) {}

func (s *Scope) SetAttribute(key string, value any) {
	s.Attributes[key] = value
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.Attributes[key] = value
	}
}
