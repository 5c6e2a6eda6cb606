package scraper

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds each navigation when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// defaultUserAgent is sent when the caller does not override it. A desktop
// Chrome string keeps the served markup consistent with the selectors.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

var validate = validator.New()

// Options configures a Scraper. SessionCookieValue is the authenticated
// li_at cookie value and is the only required field.
type Options struct {
	SessionCookieValue string         `validate:"required"`
	KeepAlive          bool           `validate:"-"`
	UserAgent          string         `validate:"-"`
	Timeout            time.Duration  `validate:"gte=0"`
	Headless           bool           `validate:"-"`
	Logger             zerolog.Logger `validate:"-"`
}

// DefaultOptions returns Options with the documented defaults applied:
// ten-second timeout, headless browser, no keep-alive.
func DefaultOptions() Options {
	return Options{
		Timeout:  DefaultTimeout,
		Headless: true,
		Logger:   zerolog.Nop(),
	}
}

// withDefaults fills unset optional fields.
func (o Options) withDefaults() Options {
	if o.Timeout == 0 {
		o.Timeout = DefaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUserAgent
	}
	return o
}

// validateOptions checks the option struct, returning a ConfigurationError
// describing the first violation.
func validateOptions(o Options) error {
	if err := validate.Struct(o); err != nil {
		return &ConfigurationError{Message: "invalid options", Cause: err}
	}
	return nil
}
