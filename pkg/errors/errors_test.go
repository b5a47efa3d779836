package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDetailDoesNotMutateShared(t *testing.T) {
	decorated := ErrPlaybookNotFound.WithDetail("playbookID", "pb-1")

	assert.Equal(t, "pb-1", decorated.Details["playbookID"])
	assert.NotContains(t, ErrPlaybookNotFound.Details, "playbookID",
		"predefined errors must stay clean after decoration")
}

func TestWithCausePreservesChain(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := ErrRepositoryUnavailable.WithCause(cause)

	assert.ErrorIs(t, err, ErrRepositoryUnavailable)
	assert.ErrorContains(t, err, "connection refused")
	assert.Equal(t, cause, err.Unwrap())
}

func TestGetDomainErrorThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", ErrGraphNotExecutable.WithDetail("issues", []string{"x"}))

	domainErr := GetDomainError(wrapped)
	require.NotNil(t, domainErr)
	assert.Equal(t, "GRAPH_NOT_EXECUTABLE", domainErr.Code)
	assert.Equal(t, 422, domainErr.StatusCode)
}

func TestStatusCodes(t *testing.T) {
	assert.Equal(t, 404, ErrPlaybookNotFound.StatusCode)
	assert.Equal(t, 400, ErrPlaybookNameRequired.StatusCode)
	assert.Equal(t, 422, ErrGraphNotExecutable.StatusCode)
	assert.Equal(t, 403, ErrPlaybookAccessDenied.StatusCode)
	assert.Equal(t, 500, ErrRepositoryUnavailable.StatusCode)
}

func TestTypePredicates(t *testing.T) {
	assert.True(t, IsNotFound(ErrPlaybookNotFound))
	assert.False(t, IsNotFound(ErrGraphNotExecutable))
	assert.True(t, IsValidation(ErrPlaybookNameRequired))
	assert.False(t, IsNotFound(fmt.Errorf("plain error")))
}
