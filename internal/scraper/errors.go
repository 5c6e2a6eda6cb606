// Package scraper orchestrates a profile scrape: browser setup, session
// verification, content loading, extraction, and teardown.
package scraper

import "fmt"

// ConfigurationError represents invalid options or an invalid profile URL.
type ConfigurationError struct {
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// SetupError represents a failure while preparing the browser environment.
type SetupError struct {
	Message string
	Cause   error
}

func (e *SetupError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("setup error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("setup error: %s", e.Message)
}

func (e *SetupError) Unwrap() error {
	return e.Cause
}

// SessionExpiredError means the session cookie no longer authenticates.
type SessionExpiredError struct {
	Message string
}

func (e *SessionExpiredError) Error() string {
	return fmt.Sprintf("session expired: %s", e.Message)
}

// NavigationError represents a navigation or page-load failure, including
// timeouts.
type NavigationError struct {
	Message string
	URL     string
	Cause   error
}

func (e *NavigationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("navigation error: %s (%s): %v", e.Message, e.URL, e.Cause)
	}
	return fmt.Sprintf("navigation error: %s (%s)", e.Message, e.URL)
}

func (e *NavigationError) Unwrap() error {
	return e.Cause
}
