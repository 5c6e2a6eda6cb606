// Package browser manages the headless Chrome lifecycle: one browser per
// manager, one scraping page at a time, with request interception and a
// forceful teardown path.
package browser

import "fmt"

// LaunchError represents a failure to start the browser process.
type LaunchError struct {
	Message string
	Cause   error
}

func (e *LaunchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("launch error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("launch error: %s", e.Message)
}

func (e *LaunchError) Unwrap() error {
	return e.Cause
}

// PageError represents a failure to create or prepare a page.
type PageError struct {
	Message string
	Cause   error
}

func (e *PageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("page error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("page error: %s", e.Message)
}

func (e *PageError) Unwrap() error {
	return e.Cause
}

// TeardownError represents a failure while shutting the browser down.
type TeardownError struct {
	Message string
	Cause   error
}

func (e *TeardownError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("teardown error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("teardown error: %s", e.Message)
}

func (e *TeardownError) Unwrap() error {
	return e.Cause
}
