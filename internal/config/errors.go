package config

import "github.com/ayoisaiah/pomade/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid %s duration: %v",
	}

	errShortBreakTooLong = &apperr.Error{
		Message: "short break duration (%v) must be less than work duration (%v)",
	}

	errLongBreakTooShort = &apperr.Error{
		Message: "long break duration (%v) must not be less than short break duration (%v)",
	}

	errUnknownSound = &apperr.Error{
		Message: "%s sound not found: %s",
	}

	errInvalidColor = &apperr.Error{
		Message: "%s color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errEmptyMsg = &apperr.Error{
		Message: "%s message cannot be empty",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be between %v and %v",
	}

	errInvalidLongBreakInterval = &apperr.Error{
		Message: "long break interval must be 0 or between %d and %d sessions",
	}

	errInvalidBacklight = &apperr.Error{
		Message: "backlight duration must be between 0s and %v",
	}

	errInvalidLogLevel = &apperr.Error{
		Message: "unknown log level: %s",
	}
)
