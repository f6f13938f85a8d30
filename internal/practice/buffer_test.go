package practice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferCommitTrimsAndClearsDraft(t *testing.T) {
	b := NewResponseBuffer()
	b.SetDraft("  my answer  ")
	require.NoError(t, b.CommitDraft())

	assert.Equal(t, 1, b.Len())
	assert.Equal(t, "my answer", b.Snapshot()[0])
	assert.Empty(t, b.Draft())
}

func TestBufferRejectsBlankDraft(t *testing.T) {
	b := NewResponseBuffer()
	for _, draft := range []string{"", "   ", "\n\t "} {
		b.SetDraft(draft)
		assert.ErrorIs(t, b.CommitDraft(), ErrEmptyResponse, "draft %q", draft)
		assert.Equal(t, 0, b.Len(), "draft %q mutated the buffer", draft)
	}

	// The rejected draft is kept so the user can correct it.
	b.SetDraft("   ")
	_ = b.CommitDraft()
	assert.Equal(t, "   ", b.Draft())
}

func TestBufferSnapshotIsACopy(t *testing.T) {
	b := NewResponseBuffer()
	b.SetDraft("one")
	require.NoError(t, b.CommitDraft())

	snap := b.Snapshot()
	snap[0] = "mutated"

	assert.Equal(t, "one", b.Snapshot()[0])
}

func TestBufferAppendsInOrder(t *testing.T) {
	b := NewResponseBuffer()
	answers := []string{"first", "second", "third"}
	for _, a := range answers {
		b.SetDraft(a)
		require.NoError(t, b.CommitDraft())
	}
	assert.Equal(t, answers, b.Snapshot())
}
