package secrets

import (
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/stretchr/testify/assert"
)

func TestKindFromCode(t *testing.T) {
	cases := []struct {
		code     string
		expected FailureKind
	}{
		{secretsmanager.ErrCodeDecryptionFailure, DecryptionFailure},
		{secretsmanager.ErrCodeInternalServiceError, InternalServiceError},
		{secretsmanager.ErrCodeInvalidParameterException, InvalidParameter},
		{secretsmanager.ErrCodeInvalidRequestException, InvalidRequest},
		{secretsmanager.ErrCodeResourceNotFoundException, ResourceNotFound},
		{"AccessDeniedException", Unrecognized},
		{"", Unrecognized},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, KindFromCode(c.code), c.code)
	}
}

func TestFailureKind_Diagnostic(t *testing.T) {
	kinds := []FailureKind{Unrecognized, DecryptionFailure, InternalServiceError, InvalidParameter, InvalidRequest, ResourceNotFound}
	seen := map[string]bool{}

	for _, kind := range kinds {
		d := kind.Diagnostic()
		assert.NotEmpty(t, d)
		assert.False(t, seen[d], "duplicate diagnostic for %s", kind)
		seen[d] = true
	}
}

func TestNewRetrievalError(t *testing.T) {
	original := awserr.New(secretsmanager.ErrCodeResourceNotFoundException, "missing", nil)

	rerr := NewRetrievalError(original)

	assert.Equal(t, ResourceNotFound, rerr.Kind)
	assert.Equal(t, secretsmanager.ErrCodeResourceNotFoundException, rerr.Code)
	assert.True(t, errors.Is(rerr, original))
	assert.Equal(t, "Failed with ResourceNotFoundException: We can't find the resource that you asked for.", rerr.Message())
	assert.Contains(t, rerr.Error(), "failed retrieving secret (ResourceNotFound)")
}

func TestNewRetrievalError_plain(t *testing.T) {
	original := errors.New("no credentials")

	rerr := NewRetrievalError(original)

	assert.Equal(t, Unrecognized, rerr.Kind)
	assert.Equal(t, "", rerr.Code)
	assert.Equal(t, original, rerr.Unwrap())
	assert.Equal(t, "Unrecognized error: ", rerr.Message())
}
