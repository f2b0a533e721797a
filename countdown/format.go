package countdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ayoisaiah/pomade/internal/apperr"
	"github.com/ayoisaiah/pomade/internal/timeutil"
)

// ErrInvalidCountdown is returned by Parse for text that Format could not
// have produced.
var ErrInvalidCountdown = &apperr.Error{
	Message: "invalid countdown %q: expected minutes:seconds",
}

// Format renders a number of seconds as minutes and zero-padded seconds.
// Minutes are not capped, so 6000 seconds is "100:00".
func Format(seconds int) string {
	m, s := timeutil.MinsAndSecs(seconds)

	return fmt.Sprintf("%d:%02d", m, s)
}

// Parse is the inverse of Format.
func Parse(text string) (mins, secs int, err error) {
	m, s, ok := strings.Cut(text, ":")
	if !ok || !isDigits(m) || len(s) != 2 || !isDigits(s) {
		return 0, 0, ErrInvalidCountdown.Fmt(text)
	}

	mins, err = strconv.Atoi(m)
	if err != nil {
		return 0, 0, ErrInvalidCountdown.Fmt(text).Wrap(err)
	}

	secs, err = strconv.Atoi(s)
	if err != nil || secs >= 60 {
		return 0, 0, ErrInvalidCountdown.Fmt(text)
	}

	return mins, secs, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
