package practice

import (
	"context"
	"fmt"
	"log"
	"sync"
)

type Mode string

const (
	ModeSelecting  Mode = "selecting"
	ModePracticing Mode = "practicing"
	ModeSubmitting Mode = "submitting"
	ModeResult     Mode = "result"
)

// session is the single live attempt a controller owns. It is created on
// Start and discarded wholesale on Cancel/Reselect; Retry replaces it with a
// fresh one for the same template.
type session struct {
	template Template
	buffer   *ResponseBuffer
	seq      *Sequencer
}

// StateView is an immutable snapshot of the controller for rendering. Only
// the fields valid in the current mode are populated.
type StateView struct {
	Mode          Mode     `json:"mode"`
	TemplateID    string   `json:"template_id,omitempty"`
	Role          string   `json:"role,omitempty"`
	QuestionIndex int      `json:"question_index"`
	QuestionCount int      `json:"question_count"`
	Question      string   `json:"question,omitempty"`
	Progress      float64  `json:"progress"`
	Draft         string   `json:"draft,omitempty"`
	Responses     int      `json:"responses"`
	Tips          []string `json:"tips,omitempty"`
	SubmitError   string   `json:"submit_error,omitempty"`
	Result        *Result  `json:"result,omitempty"`
}

// Controller is the practice session state machine:
// selecting, practicing, submitting, result, with retry back to
// practicing and cancel/reselect back to selecting. All entry points are
// serialized by one mutex; the in-flight flag, not the mutex, is what gates
// user transitions while a transcript is being scored.
type Controller struct {
	mu     sync.Mutex
	scorer Scorer

	mode       Mode
	sess       *session
	result     *Result
	inFlight   bool
	generation uint64
	submitErr  string

	// onChange is invoked with a fresh snapshot after every transition,
	// outside the lock. Set once before the controller is shared.
	onChange func(StateView)
}

func NewController(scorer Scorer) *Controller {
	return &Controller{scorer: scorer, mode: ModeSelecting}
}

func (c *Controller) SetOnChange(fn func(StateView)) {
	c.onChange = fn
}

// Start binds a fresh session to the template and enters practicing.
func (c *Controller) Start(tpl Template) error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}
	if c.mode == ModePracticing || c.mode == ModeSubmitting {
		c.mu.Unlock()
		return ErrSessionActive
	}
	if len(tpl.Questions) == 0 {
		c.mu.Unlock()
		return ErrUnknownTemplate
	}

	c.sess = &session{
		template: tpl,
		buffer:   NewResponseBuffer(),
		seq:      NewSequencer(tpl.Questions),
	}
	c.result = nil
	c.submitErr = ""
	c.generation++
	c.mode = ModePracticing
	view := c.viewLocked()
	c.mu.Unlock()

	c.notify(view)
	return nil
}

// SetDraft replaces the draft for the current question.
func (c *Controller) SetDraft(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.inFlight {
		return ErrSubmissionInFlight
	}
	if c.mode != ModePracticing {
		return ErrNoActiveSession
	}
	c.sess.buffer.SetDraft(text)
	return nil
}

// SubmitCurrentAnswer commits the draft and either advances to the next
// question or, on the last one, enters submitting and launches the scoring
// call. After a failed submission (all answers committed, mode back to
// practicing) it re-submits the existing transcript instead of committing.
func (c *Controller) SubmitCurrentAnswer() error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}
	if c.mode != ModePracticing {
		c.mu.Unlock()
		return ErrNoActiveSession
	}

	s := c.sess
	if s.buffer.Len() == s.seq.Count() {
		// Retry after a failed submission: the transcript is already
		// complete, nothing left to commit.
		view := c.beginSubmitLocked()
		c.mu.Unlock()
		c.notify(view)
		return nil
	}

	if err := s.buffer.CommitDraft(); err != nil {
		// No transition: index, responses and draft are untouched.
		c.mu.Unlock()
		return err
	}

	if !s.seq.IsLast() {
		if err := s.seq.Advance(); err != nil {
			// Unreachable while the controller's invariants hold.
			log.Printf("practice: advance failed: %v", err)
			c.mu.Unlock()
			return err
		}
		view := c.viewLocked()
		c.mu.Unlock()
		c.notify(view)
		return nil
	}

	// Last question committed: submit instead of advancing.
	view := c.beginSubmitLocked()
	c.mu.Unlock()
	c.notify(view)
	return nil
}

// beginSubmitLocked flips to submitting and launches the async scoring call.
// Caller holds the lock and notifies with the returned view after unlocking.
func (c *Controller) beginSubmitLocked() StateView {
	c.mode = ModeSubmitting
	c.inFlight = true
	c.submitErr = ""

	gen := c.generation
	templateID := c.sess.template.ID
	transcript := c.sess.buffer.Snapshot()

	go c.runSubmission(gen, templateID, transcript)

	return c.viewLocked()
}

// runSubmission resolves the in-flight scoring call. A resolution whose
// generation no longer matches belongs to an abandoned session and is
// discarded without touching current state.
func (c *Controller) runSubmission(gen uint64, templateID string, transcript []string) {
	result, err := c.scorer.SubmitPractice(context.Background(), templateID, transcript)

	c.mu.Lock()
	if c.generation != gen {
		c.mu.Unlock()
		log.Printf("practice: discarding stale submission result for template %s", templateID)
		return
	}
	c.inFlight = false
	if err != nil {
		c.mode = ModePracticing
		c.submitErr = fmt.Errorf("%w: %v", ErrSubmissionFailed, err).Error()
		view := c.viewLocked()
		c.mu.Unlock()
		log.Printf("practice: submission failed for template %s: %v", templateID, err)
		c.notify(view)
		return
	}
	c.result = result
	c.mode = ModeResult
	view := c.viewLocked()
	c.mu.Unlock()
	c.notify(view)
}

// Cancel discards the session unconditionally and returns to selecting. A
// scoring call still in flight keeps running; its resolution is discarded by
// the generation check.
func (c *Controller) Cancel() {
	c.mu.Lock()
	c.discardLocked()
	view := c.viewLocked()
	c.mu.Unlock()
	c.notify(view)
}

// Reselect leaves the result screen back to selecting, discarding the
// session and result entirely. Identical to Cancel.
func (c *Controller) Reselect() {
	c.Cancel()
}

// Retry starts a fresh session for the template just practiced. No responses
// carry over.
func (c *Controller) Retry() error {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return ErrSubmissionInFlight
	}
	if c.mode != ModeResult {
		c.mu.Unlock()
		return ErrNoActiveSession
	}
	tpl := c.sess.template
	c.discardLocked()
	c.mu.Unlock()

	return c.Start(tpl)
}

func (c *Controller) discardLocked() {
	c.generation++
	c.sess = nil
	c.result = nil
	c.inFlight = false
	c.submitErr = ""
	c.mode = ModeSelecting
}

func (c *Controller) View() StateView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Controller) viewLocked() StateView {
	v := StateView{Mode: c.mode}
	if c.sess == nil {
		return v
	}

	s := c.sess
	v.TemplateID = s.template.ID
	v.Role = s.template.Role
	v.QuestionIndex = s.seq.Index()
	v.QuestionCount = s.seq.Count()
	// Progress counts committed answers, so after the kth commit it reads
	// exactly k/N regardless of whether the sequencer advanced or the
	// session entered submitting.
	if n := s.seq.Count(); n > 0 {
		v.Progress = float64(s.buffer.Len()) / float64(n)
	}
	v.Responses = s.buffer.Len()
	v.Draft = s.buffer.Draft()
	v.Tips = s.template.Tips
	v.SubmitError = c.submitErr
	v.Result = c.result

	if c.mode == ModePracticing {
		if q, err := s.seq.Current(); err == nil {
			v.Question = q
		}
	}
	return v
}

func (c *Controller) notify(v StateView) {
	if c.onChange != nil {
		c.onChange(v)
	}
}
