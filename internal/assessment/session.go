package assessment

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/sgslabs/sgsdiag/internal/catalog"
	"github.com/sgslabs/sgsdiag/internal/scoring"
)

// Phase represents the current phase of a diagnostic session.
type Phase int

const (
	PhaseNotStarted Phase = iota // Applicant info not yet captured
	PhaseInProgress              // Serving battery questions
	PhaseSubmitting              // Battery done, report generation pending
	PhaseComplete                // Report delivered
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseInProgress:
		return "in-progress"
	case PhaseSubmitting:
		return "submitting"
	case PhaseComplete:
		return "complete"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Session tracks one applicant's pass through the battery. Answers are
// stored as effective scores keyed by question ID; writing the same ID
// twice overwrites, so re-answering a question is safe.
type Session struct {
	ID   string
	User UserInfo

	// Questions is the battery in presentation order, fixed at creation.
	Questions []catalog.Question

	// CurrentIndex is the index of the question being displayed.
	CurrentIndex int

	// Answers holds effective scores keyed by question ID.
	Answers map[string]int

	Phase Phase

	// ReportText is the generated narrative, set when the session completes.
	ReportText string
}

// NewSession creates a session holding the full seeded battery.
func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		Questions: catalog.Questions(),
		Answers:   make(map[string]int),
		Phase:     PhaseNotStarted,
	}
}

// Begin records the applicant's info and opens the battery.
func (s *Session) Begin(user UserInfo) error {
	if s.Phase != PhaseNotStarted {
		return fmt.Errorf("cannot begin in phase %s", s.Phase)
	}
	s.User = user
	s.Phase = PhaseInProgress
	return nil
}

// Current returns the question being displayed.
func (s *Session) Current() (catalog.Question, error) {
	if s.Phase != PhaseInProgress {
		return catalog.Question{}, fmt.Errorf("no current question in phase %s", s.Phase)
	}
	if s.CurrentIndex >= len(s.Questions) {
		return catalog.Question{}, fmt.Errorf("question index %d out of range", s.CurrentIndex)
	}
	return s.Questions[s.CurrentIndex], nil
}

// Advance records the raw Likert answer for the current question and moves
// to the next one. After the final question the session enters
// PhaseSubmitting so report generation can run.
func (s *Session) Advance(raw int) error {
	q, err := s.Current()
	if err != nil {
		return err
	}
	effective, err := scoring.EffectiveScore(q, raw)
	if err != nil {
		return fmt.Errorf("question %s: %w", q.ID, err)
	}
	s.Answers[q.ID] = effective

	if s.CurrentIndex < len(s.Questions)-1 {
		s.CurrentIndex++
	} else {
		s.Phase = PhaseSubmitting
	}
	return nil
}

// CompleteReport stores the generated narrative and closes the session.
func (s *Session) CompleteReport(reportText string) error {
	if s.Phase != PhaseSubmitting {
		return fmt.Errorf("cannot complete report in phase %s", s.Phase)
	}
	s.ReportText = reportText
	s.Phase = PhaseComplete
	return nil
}

// ReportFailed returns the session to the battery after a failed report
// generation. Answers are preserved; the applicant resubmits from the last
// question rather than starting over.
func (s *Session) ReportFailed() {
	if s.Phase == PhaseSubmitting {
		s.Phase = PhaseInProgress
	}
}

// Reset clears all progress back to the applicant-info step.
func (s *Session) Reset() {
	s.Answers = make(map[string]int)
	s.CurrentIndex = 0
	s.ReportText = ""
	s.Phase = PhaseNotStarted
	s.User = UserInfo{}
}

// Progress returns completion as a 0-100 percentage, counting the question
// currently on screen.
func (s *Session) Progress() int {
	if len(s.Questions) == 0 {
		return 0
	}
	done := s.CurrentIndex + 1
	if s.Phase == PhaseSubmitting || s.Phase == PhaseComplete {
		done = len(s.Questions)
	}
	return int(math.Round(float64(done) / float64(len(s.Questions)) * 100))
}

// Result computes the category scores and composite PAI from the recorded
// answers. Both come from the scoring package so every consumer sees the
// same numbers.
func (s *Session) Result() Result {
	scores := scoring.ScoreCategories(s.Answers)
	pai, ok := scoring.Composite(scores)
	return Result{
		Categories: scores,
		PAI:        pai,
		Valid:      ok,
	}
}

// Result is the scored outcome of a battery. Valid is false when the
// session holds no answers; PAI and Categories carry no meaning then.
type Result struct {
	Categories scoring.CategoryScores
	PAI        int
	Valid      bool
}
