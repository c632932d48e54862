package ulid

import (
	"strings"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBatchID(t *testing.T) {
	t.Parallel()

	first := NewBatchID()
	second := NewBatchID()

	require.True(t, strings.HasPrefix(first, batchIDPrefix), first)
	_, err := ulid.ParseStrict(strings.TrimPrefix(first, batchIDPrefix))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Len(t, NewULID(), 26)
}
