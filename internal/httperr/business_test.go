package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindHelpers(t *testing.T) {
	assert.True(t, IsNotFound(ErrNotFound("x", "")))
	assert.True(t, IsConflict(ErrConflict("x", "")))
	assert.True(t, IsValidation(ErrValidation("x", "")))
	assert.True(t, IsKind(ErrStorage(errors.New("boom")), KindStorage))

	assert.False(t, IsNotFound(ErrConflict("x", "")))
	assert.False(t, IsConflict(errors.New("plain")))
}

func TestIsBusinessMatchesWrappedErrors(t *testing.T) {
	err := fmt.Errorf("create appointment: %w", ErrConflict("time_conflict", "slot ocupado"))

	assert.True(t, IsBusiness(err, "time_conflict"))
	assert.True(t, IsConflict(err))
	assert.False(t, IsBusiness(err, "other_code"))
}

func TestErrStorageNil(t *testing.T) {
	assert.Nil(t, ErrStorage(nil))
}
