package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "roster/pkg/domain-errors"
)

func TestHashAndVerifyRoundTrip(t *testing.T) {
	hash, err := Hash("journey-caller-password")
	require.NoError(t, err)
	require.NotEqual(t, "journey-caller-password", hash)

	assert.NoError(t, Verify("journey-caller-password", hash))
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	hash, err := Hash("correct")
	require.NoError(t, err)

	err = Verify("wrong", hash)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestHashRejectsEmptySecret(t *testing.T) {
	_, err := Hash("")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}
