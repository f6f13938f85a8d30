package practice

// Sequencer walks a template's question list in order. The index starts at 0
// and never exceeds len(questions)-1; the controller decides whether the last
// commit advances or submits.
type Sequencer struct {
	questions []string
	index     int
}

func NewSequencer(questions []string) *Sequencer {
	return &Sequencer{questions: questions}
}

func (s *Sequencer) Index() int {
	return s.index
}

func (s *Sequencer) Count() int {
	return len(s.questions)
}

func (s *Sequencer) Current() (string, error) {
	if s.index < 0 || s.index >= len(s.questions) {
		return "", ErrOutOfRange
	}
	return s.questions[s.index], nil
}

func (s *Sequencer) IsLast() bool {
	return s.index == len(s.questions)-1
}

func (s *Sequencer) Advance() error {
	if s.IsLast() {
		return ErrAlreadyComplete
	}
	s.index++
	return nil
}
