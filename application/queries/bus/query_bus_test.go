package bus

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testQuery struct {
	ID string
}

func (q testQuery) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("id is required")
	}
	return nil
}

func TestAskDispatchesAndReturnsResult(t *testing.T) {
	b := NewQueryBus()
	require.NoError(t, b.Register(testQuery{}, QueryHandlerFunc(
		func(_ context.Context, q Query) (interface{}, error) {
			return "result-for-" + q.(testQuery).ID, nil
		},
	)))

	got, err := b.Ask(context.Background(), testQuery{ID: "42"})
	require.NoError(t, err)
	assert.Equal(t, "result-for-42", got)
}

func TestAskRejectsInvalidQuery(t *testing.T) {
	b := NewQueryBus()
	require.NoError(t, b.Register(testQuery{}, QueryHandlerFunc(
		func(context.Context, Query) (interface{}, error) {
			return nil, nil
		},
	)))

	_, err := b.Ask(context.Background(), testQuery{})
	assert.ErrorContains(t, err, "validation failed")
}

func TestAskUnregisteredQuery(t *testing.T) {
	b := NewQueryBus()

	_, err := b.Ask(context.Background(), testQuery{ID: "42"})
	assert.ErrorContains(t, err, "no handler registered")
}
