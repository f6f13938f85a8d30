package practice

import "strings"

// ResponseBuffer holds the in-progress draft and the committed answers of
// one session. The committed sequence is append-only: CommitDraft is the
// sole mutation path, and answers are final once advanced past.
type ResponseBuffer struct {
	draft     string
	committed []string
}

func NewResponseBuffer() *ResponseBuffer {
	return &ResponseBuffer{}
}

// SetDraft replaces the draft unconditionally.
func (b *ResponseBuffer) SetDraft(text string) {
	b.draft = text
}

func (b *ResponseBuffer) Draft() string {
	return b.draft
}

// CommitDraft appends the trimmed draft to the committed sequence and clears
// the draft. A draft that is empty after trimming is rejected with
// ErrEmptyResponse and left untouched so the user can correct it.
func (b *ResponseBuffer) CommitDraft() error {
	trimmed := strings.TrimSpace(b.draft)
	if trimmed == "" {
		return ErrEmptyResponse
	}
	b.committed = append(b.committed, trimmed)
	b.draft = ""
	return nil
}

func (b *ResponseBuffer) Len() int {
	return len(b.committed)
}

// Snapshot returns a copy of the committed sequence for submission.
func (b *ResponseBuffer) Snapshot() []string {
	out := make([]string, len(b.committed))
	copy(out, b.committed)
	return out
}
