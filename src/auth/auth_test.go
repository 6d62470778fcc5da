package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hashed := HashPassword("hunter2")

	ok, err := CheckPassword("hunter2", hashed)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword("hunter3", hashed)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordStringRoundTrip(t *testing.T) {
	hashed := HashPassword("correct horse battery staple")

	parsed, err := ParsePasswordString(hashed.String())
	require.NoError(t, err)
	assert.Equal(t, hashed, parsed)

	ok, err := CheckPassword("correct horse battery staple", parsed)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestParsePasswordStringRejectsGarbage(t *testing.T) {
	_, err := ParsePasswordString("not a password string")
	assert.Error(t, err)
}

func TestCheckPasswordUnknownAlgorithm(t *testing.T) {
	_, err := CheckPassword("whatever", HashedPassword{Algorithm: "md5"})
	assert.Error(t, err)
}
