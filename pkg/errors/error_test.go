package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidParameter, "bad parameter")
	assert.Equal(t, ErrCodeInvalidParameter, err.Code)
	assert.Equal(t, "bad parameter", err.Message)
	assert.NoError(t, err.Cause)
	assert.Equal(t, "[100] bad parameter", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrCodePositionNotFound, "no open position for %s", "NIFTY")
	assert.Equal(t, ErrCodePositionNotFound, err.Code)
	assert.Equal(t, "[501] no open position for NIFTY", err.Error())
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	err := Wrap(ErrCodeJournalWriteFailed, "failed to record trade", cause)
	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestWrapf(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := Wrapf(ErrCodeOrderFailed, cause, "failed to place order for %s", "BANKNIFTY")
	assert.Equal(t, ErrCodeOrderFailed, err.Code)
	assert.Contains(t, err.Error(), "BANKNIFTY")
	assert.Contains(t, err.Error(), "boom")
}

func TestGetCode(t *testing.T) {
	err := New(ErrCodeInsufficientData, "too few bars")
	assert.Equal(t, ErrCodeInsufficientData, GetCode(err))

	// Wrapped in a plain error chain
	wrapped := fmt.Errorf("outer: %w", err)
	assert.Equal(t, ErrCodeInsufficientData, GetCode(wrapped))

	// Non-coded error
	assert.Equal(t, ErrCodeUnknown, GetCode(fmt.Errorf("plain")))
	assert.Equal(t, ErrCodeUnknown, GetCode(nil))
}

func TestHasCode(t *testing.T) {
	err := New(ErrCodeLegPlacementFail, "leg rejected")
	assert.True(t, HasCode(err, ErrCodeLegPlacementFail))
	assert.False(t, HasCode(err, ErrCodeOrderFailed))
}

func TestInsufficientDataError(t *testing.T) {
	err := NewInsufficientDataError(14, 3, "NIFTY", "need 14 bars, have 3")
	assert.Equal(t, 14, err.Required)
	assert.Equal(t, 3, err.Actual)
	assert.Equal(t, "NIFTY", err.Symbol)
	assert.Equal(t, "need 14 bars, have 3", err.Error())

	assert.True(t, IsInsufficientDataError(err))
	assert.True(t, IsInsufficientDataError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsInsufficientDataError(fmt.Errorf("plain")))
	assert.False(t, IsInsufficientDataError(nil))
}
