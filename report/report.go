// Package report prints errors to the terminal
package report

import (
	"errors"
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/pomade/internal/apperr"
)

// Error prints err. Application errors are printed without the chain of
// causes unless verbose is set.
func Error(err error, verbose bool) {
	var appErr *apperr.Error
	if !verbose && errors.As(err, &appErr) {
		pterm.Error.Println(appErr.Message)
		return
	}

	pterm.Error.Println(err)
}

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	Error(err, true)
	os.Exit(1)
}
