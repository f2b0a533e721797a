package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/pomade/internal/apperr"
)

func TestError(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	var buf bytes.Buffer

	old := pterm.Error.Writer
	pterm.Error.Writer = &buf

	t.Cleanup(func() {
		pterm.Error.Writer = old
	})

	tmpl := &apperr.Error{Message: "reading config file failed"}
	err := tmpl.Wrap(errors.New("permission denied"))

	Error(err, false)
	assert.Contains(t, buf.String(), "reading config file failed")
	assert.NotContains(t, buf.String(), "permission denied")

	buf.Reset()

	Error(err, true)
	assert.Contains(t, buf.String(), "reading config file failed: permission denied")
}
