package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/dayplan/internal/store"
)

func TestGetMissing(t *testing.T) {
	s := New()
	_, err := s.Get(context.Background(), store.KeyTasks)
	assert.ErrorIs(t, err, store.ErrNoSlot)
}

func TestPutCopiesValue(t *testing.T) {
	ctx := context.Background()
	s := New()
	v := []byte(`[]`)
	require.NoError(t, s.Put(ctx, store.KeyGoals, v))
	v[0] = 'x'

	got, err := s.Get(ctx, store.KeyGoals)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}
