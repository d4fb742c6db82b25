package client

import (
	"errors"
	"sync"
)

var (
	// ErrInProgress is returned when an action is already running for the item.
	ErrInProgress = errors.New("request is already being processed")
	ErrNotFound   = errors.New("not found")
)

// ValidationError is a client-side rejection; no request was sent.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationError(msg string) error { return &ValidationError{Message: msg} }

// viewState is the loading flag and the single error message every view shows.
type viewState struct {
	mu      sync.Mutex
	loading bool
	err     string
}

func (s *viewState) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *viewState) ErrorMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *viewState) setError(msg string) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
}

// processingSet tracks the ids with an action in flight.
type processingSet struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func (p *processingSet) begin(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ids == nil {
		p.ids = make(map[string]struct{})
	}
	if _, busy := p.ids[id]; busy {
		return false
	}
	p.ids[id] = struct{}{}
	return true
}

func (p *processingSet) end(id string) {
	p.mu.Lock()
	delete(p.ids, id)
	p.mu.Unlock()
}

func (p *processingSet) has(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.ids[id]
	return ok
}

func removeRequest(list []ChangeRequest, id string) []ChangeRequest {
	out := list[:0:0]
	for _, cr := range list {
		if cr.ID != id {
			out = append(out, cr)
		}
	}
	return out
}
