package apperr

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTemplate = &Error{Message: "%s duration must be between %v and %v"}

func TestFmt(t *testing.T) {
	err := errTemplate.Fmt("work", 1, 2)

	assert.Equal(t, "work duration must be between 1 and 2", err.Error())
	assert.ErrorIs(t, err, errTemplate)
	assert.NotErrorIs(t, err, &Error{Message: errTemplate.Message})
}

func TestWrap(t *testing.T) {
	base := &Error{Message: "reading config file failed"}

	err := base.Wrap(io.ErrUnexpectedEOF)

	assert.Equal(t, "reading config file failed: unexpected EOF", err.Error())
	assert.ErrorIs(t, err, base)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	var appErr *Error
	assert.True(t, errors.As(err, &appErr))
}

func TestFmtOfDerivedErrorKeepsTemplate(t *testing.T) {
	err := errTemplate.Fmt("a", 1, 2).Wrap(io.EOF)

	assert.ErrorIs(t, err, errTemplate)
}
