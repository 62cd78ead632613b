package pystandards_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/pystandards"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pystandards.Errorf(pystandards.ENOTFOUND, "unknown standard category: %s", "bogus")

	assert.Equal(t, pystandards.ENOTFOUND, pystandards.ErrorCode(err))
	assert.Equal(t, "unknown standard category: bogus", pystandards.ErrorMessage(err))
	assert.Contains(t, err.Error(), "code=not_found")
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pystandards.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pystandards.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("lookup failed: %w", pystandards.Errorf(pystandards.ENOTFOUND, "missing"))

	assert.Equal(t, pystandards.ENOTFOUND, pystandards.ErrorCode(err))
	assert.Equal(t, "missing", pystandards.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, pystandards.EINTERNAL, pystandards.ErrorCode(err))
	assert.Equal(t, "Internal error.", pystandards.ErrorMessage(err))
}
