package reportgen

import (
	"context"
	"sync"
)

// Service runs report generation asynchronously. At most one request is in
// flight at a time: RequestReport while one is pending is a no-op, so
// duplicate submissions (e.g. double key presses) never fan out.
type Service struct {
	gen Generator

	mu         sync.Mutex
	requesting bool
	text       string
	err        error
	ready      bool
}

// NewService creates a report generation service.
func NewService(gen Generator) *Service {
	return &Service{gen: gen}
}

// RequestReport starts async generation. Returns false if a request is
// already outstanding or an unconsumed result is waiting.
func (s *Service) RequestReport(ctx context.Context, input Input) bool {
	s.mu.Lock()
	if s.requesting || s.ready {
		s.mu.Unlock()
		return false
	}
	s.requesting = true
	s.mu.Unlock()

	go func() {
		text, err := s.gen.GenerateReport(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.text = text
		s.err = err
		s.requesting = false
		s.ready = true
	}()
	return true
}

// Requesting reports whether a generation call is in flight.
func (s *Service) Requesting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requesting
}

// ConsumeReport returns the finished report text or generation error.
// Returns ok=false while no result is ready. Consumption clears the slot
// so a follow-up request can run.
func (s *Service) ConsumeReport() (text string, err error, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return "", nil, false
	}
	text, err = s.text, s.err
	s.text = ""
	s.err = nil
	s.ready = false
	return text, err, true
}
