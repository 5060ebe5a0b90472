package survey

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"prosono/client/internal/api"
	"prosono/client/internal/session"
)

// Step is a position in the evaluation wizard.
type Step string

const (
	StepIntro     Step = "intro"
	StepAttitude  Step = "attitude"
	StepFrequency Step = "frequency"
	StepKnowledge Step = "knowledge"
)

var stepOrder = []Step{StepIntro, StepAttitude, StepFrequency, StepKnowledge}

var (
	ErrNotLastStep     = errors.New("survey: submission only allowed from the last step")
	ErrDraftIncomplete = errors.New("survey: draft is missing answers for a completed step")
)

// Draft accumulates the wizard's partial answers. A nil sub-record means that
// step has not been completed yet; back navigation never clears a collected
// record. The draft is discarded with the wizard after submission.
type Draft struct {
	Attitude   *AttitudeAnswers
	Frequency  *FrequencyAnswers
	Knowledge  *KnowledgeAnswers
	SurveyDate string // display format DD-MM-YYYY
}

// Result is the aggregate outcome of the three independent submissions.
// A failed submission leaves its ID at -1 and its name in Failed.
type Result struct {
	AttitudeID  int
	FrequencyID int
	KnowledgeID int
	Message     string
	Failed      []string
}

// Wizard drives the 4-step evaluation: intro, attitude, frequency, knowledge.
// Completing the last step submits all three questionnaires with best-effort
// partial success: one failed write never forces the participant to redo the
// whole assessment.
type Wizard struct {
	client  *api.Client
	session *session.Manager
	log     zerolog.Logger
	idx     int
	draft   Draft
}

func NewWizard(client *api.Client, sess *session.Manager, logger zerolog.Logger) *Wizard {
	return &Wizard{
		client:  client,
		session: sess,
		log:     logger,
		draft:   Draft{SurveyDate: TodayDisplay()},
	}
}

func (w *Wizard) Current() Step { return stepOrder[w.idx] }

func (w *Wizard) Draft() Draft { return w.draft }

// Back returns to the immediately preceding step. Answers collected for the
// current or any later step are retained.
func (w *Wizard) Back() {
	if w.idx > 0 {
		w.idx--
	}
}

func (w *Wizard) SetSurveyDate(date string) error {
	if !ValidDisplayDate(date) {
		return &ValidationError{Field: "surveyDate", Message: "expected DD-MM-YYYY"}
	}
	w.draft.SurveyDate = date
	return nil
}

func (w *Wizard) advance() {
	if w.idx < len(stepOrder)-1 {
		w.idx++
	}
}

// CompleteIntro moves past the introduction; it collects no answers.
func (w *Wizard) CompleteIntro() {
	if w.Current() == StepIntro {
		w.advance()
	}
}

func (w *Wizard) CompleteAttitude(answers AttitudeAnswers) error {
	if err := validate.Struct(answers); err != nil {
		return fmt.Errorf("survey: invalid attitude answers: %w", err)
	}
	w.draft.Attitude = &answers
	if w.Current() == StepAttitude {
		w.advance()
	}
	return nil
}

func (w *Wizard) CompleteFrequency(answers FrequencyAnswers) error {
	if err := validate.Struct(answers); err != nil {
		return fmt.Errorf("survey: invalid frequency answers: %w", err)
	}
	w.draft.Frequency = &answers
	if w.Current() == StepFrequency {
		w.advance()
	}
	return nil
}

// CompleteKnowledge stores the final step's answers and submits the whole
// assessment.
func (w *Wizard) CompleteKnowledge(ctx context.Context, answers KnowledgeAnswers) (*Result, error) {
	if w.Current() != StepKnowledge {
		return nil, ErrNotLastStep
	}
	w.draft.Knowledge = &answers
	return w.Submit(ctx)
}

type submission struct {
	name     string
	endpoint string
	payload  any
	id       int
	err      error
}

// Submit converts the survey date to wire format once, builds the three
// payloads, and fires the three requests concurrently. It waits for all of
// them to settle before classifying the aggregate outcome; there is no
// fail-fast path.
func (w *Wizard) Submit(ctx context.Context) (*Result, error) {
	if w.Current() != StepKnowledge {
		return nil, ErrNotLastStep
	}
	if w.draft.Attitude == nil || w.draft.Frequency == nil || w.draft.Knowledge == nil {
		return nil, ErrDraftIncomplete
	}

	wireDate := ToWireDate(w.draft.SurveyDate)
	subs := []*submission{
		{name: "attitude", endpoint: "/my-sleep-surveys", payload: w.draft.Attitude.ToWire(wireDate)},
		{name: "frequency", endpoint: "/cleveland-surveys", payload: w.draft.Frequency.ToWire(wireDate)},
		{name: "knowledge", endpoint: "/surveys", payload: w.draft.Knowledge.ToWire(wireDate)},
	}

	var wg sync.WaitGroup
	for _, sub := range subs {
		wg.Add(1)
		go func(sub *submission) {
			defer wg.Done()
			var resp struct {
				ID int `json:"id"`
			}
			if err := w.client.Post(ctx, sub.endpoint, sub.payload, &resp); err != nil {
				sub.id = -1
				sub.err = err
				w.log.Error().Err(err).Str("survey", sub.name).Msg("survey submission failed")
				return
			}
			sub.id = resp.ID
		}(sub)
	}
	wg.Wait()

	result := &Result{
		AttitudeID:  subs[0].id,
		FrequencyID: subs[1].id,
		KnowledgeID: subs[2].id,
	}

	var reasons []string
	for _, sub := range subs {
		if sub.err != nil {
			result.Failed = append(result.Failed, sub.name)
			reasons = append(reasons, fmt.Sprintf("failed to submit %s survey: %v", sub.name, sub.err))
		}
	}

	successes := len(subs) - len(result.Failed)
	if successes == 0 {
		return nil, fmt.Errorf("survey: failed to submit all surveys: %s", strings.Join(reasons, "; "))
	}

	if successes == len(subs) {
		result.Message = "All surveys submitted successfully"
	} else {
		result.Message = fmt.Sprintf("%d of 3 surveys submitted successfully. Errors: %s",
			successes, strings.Join(reasons, "; "))
	}

	// Pull fresh server-side aggregates so the dashboard reflects the new
	// records. The submission outcome stands even if this refresh fails.
	if err := w.session.RefreshUser(ctx); err != nil {
		w.log.Warn().Err(err).Msg("user refresh after submission failed")
	}

	return result, nil
}
