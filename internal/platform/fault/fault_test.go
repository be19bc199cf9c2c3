package fault

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-records/internal/platform/logger"
)

func TestWrap_HidesCauseButKeepsChain(t *testing.T) {
	cause := errors.New("disk I/O error")
	err := Wrap(logger.NewNop(), "pets.Create", cause)

	require.Error(t, err)
	assert.Equal(t, GenericMessage, err.Error())
	assert.NotContains(t, err.Error(), "disk")
	assert.ErrorIs(t, err, cause)

	fe, ok := As(err)
	require.True(t, ok)
	_, perr := uuid.Parse(fe.Ref)
	assert.NoError(t, perr)
	assert.Equal(t, "pets.Create", fe.Op)
}

func TestWrap_NilAndAlreadyWrapped(t *testing.T) {
	assert.NoError(t, Wrap(nil, "op", nil))

	first := Wrap(nil, "inner", errors.New("x"))
	second := Wrap(nil, "outer", fmt.Errorf("ctx: %w", first))

	fe1, _ := As(first)
	fe2, ok := As(second)
	require.True(t, ok)
	assert.Equal(t, fe1.Ref, fe2.Ref)
}
