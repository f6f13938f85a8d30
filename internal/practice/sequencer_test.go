package practice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequencerWalksInOrder(t *testing.T) {
	questions := []string{"q1", "q2", "q3"}
	s := NewSequencer(questions)

	for i, want := range questions {
		assert.Equal(t, i, s.Index())
		got, err := s.Current()
		require.NoError(t, err)
		assert.Equal(t, want, got)
		if i < len(questions)-1 {
			require.NoError(t, s.Advance())
		}
	}
}

func TestSequencerRefusesAdvancePastLast(t *testing.T) {
	s := NewSequencer([]string{"only"})
	require.True(t, s.IsLast())

	assert.ErrorIs(t, s.Advance(), ErrAlreadyComplete)
	assert.Equal(t, 0, s.Index(), "index moved on refused advance")
}

func TestSequencerEmptyList(t *testing.T) {
	s := NewSequencer(nil)
	_, err := s.Current()
	assert.ErrorIs(t, err, ErrOutOfRange)
}
