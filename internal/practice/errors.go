package practice

import "errors"

var (
	// ErrEmptyResponse rejects a commit whose draft is empty after trimming.
	// Local validation, never fatal: the caller keeps the user on the
	// current question.
	ErrEmptyResponse = errors.New("response must not be empty")

	// ErrOutOfRange and ErrAlreadyComplete are invariant violations. They
	// are not expected to surface while the controller holds its own
	// invariants; callers log them rather than show them to a user.
	ErrOutOfRange      = errors.New("no current question")
	ErrAlreadyComplete = errors.New("sequencer already at last question")

	// ErrSubmissionFailed wraps a scoring call failure. The session stays
	// in practicing with all committed responses intact; the user may
	// retry.
	ErrSubmissionFailed = errors.New("submission failed")

	// ErrSubmissionInFlight gates user transitions while a transcript is
	// being scored. Exactly one submission per session may be in flight.
	ErrSubmissionInFlight = errors.New("submission already in flight")

	ErrCatalogUnavailable = errors.New("no interview templates available")
	ErrUnknownTemplate    = errors.New("unknown interview template")
	ErrNoActiveSession    = errors.New("no active practice session")
	ErrSessionActive      = errors.New("practice session already in progress")
)
