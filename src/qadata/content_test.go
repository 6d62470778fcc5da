package qadata

import (
	"strings"
	"testing"

	"github.com/campusqa/campusqa/src/models"
	"github.com/stretchr/testify/assert"
)

func TestValidText(t *testing.T) {
	t.Run("accepts normal content", func(t *testing.T) {
		assert.True(t, validText("How does the scheduler work?", models.MaxContentTextLength))
		assert.True(t, validText("x", models.MaxContentTextLength))
	})
	t.Run("rejects blank", func(t *testing.T) {
		assert.False(t, validText("", models.MaxContentTextLength))
		assert.False(t, validText("   ", models.MaxContentTextLength))
		assert.False(t, validText("\t\n", models.MaxContentTextLength))
	})
	t.Run("bounds are in characters, not bytes", func(t *testing.T) {
		assert.True(t, validText(strings.Repeat("a", models.MaxContentTextLength), models.MaxContentTextLength))
		assert.False(t, validText(strings.Repeat("a", models.MaxContentTextLength+1), models.MaxContentTextLength))
		assert.True(t, validText(strings.Repeat("ä", models.MaxContentTextLength), models.MaxContentTextLength))
	})
	t.Run("message bound is tighter", func(t *testing.T) {
		text := strings.Repeat("a", models.MaxMessageTextLength+1)
		assert.True(t, validText(text, models.MaxContentTextLength))
		assert.False(t, validText(text, models.MaxMessageTextLength))
	})
}

func TestCanMutate(t *testing.T) {
	assert.True(t, CanMutate("alice", "alice", false))
	assert.False(t, CanMutate("alice", "bob", false))
	assert.True(t, CanMutate("alice", "bob", true))
	assert.True(t, CanMutate("alice", "alice", true))
}

func TestCreateResultString(t *testing.T) {
	assert.Equal(t, "ok", CreateOK.String())
	assert.Equal(t, "invalid", CreateInvalid.String())
	assert.Equal(t, "duplicate", CreateDuplicate.String())
	assert.Equal(t, "unknown", CreateResult(99).String())
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%threads%", likePattern("threads"))
	assert.Equal(t, "%%", likePattern(""))
	assert.Equal(t, `%100\%\_done%`, likePattern("100%_done"))
}
