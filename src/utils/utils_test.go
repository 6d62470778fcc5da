package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrDefault(t *testing.T) {
	assert.Equal(t, 5, OrDefault(5, 10))
	assert.Equal(t, 10, OrDefault(0, 10))
	assert.Equal(t, "custom", OrDefault("custom", "default"))
	assert.Equal(t, "default", OrDefault("", "default"))
}

func TestRecoverPanicAsError(t *testing.T) {
	boom := errors.New("boom")

	panicky := func() (err error) {
		defer RecoverPanicAsError(&err)
		panic(boom)
	}

	err := panicky()
	if assert.Error(t, err) {
		assert.True(t, errors.Is(err, boom))
	}
}
