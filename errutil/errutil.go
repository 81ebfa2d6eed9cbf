// Package errutil holds assertion helpers for conditions that can only be
// reached through a programming error. They cost nothing unless debug is
// flipped on at build time.
package errutil

import (
	"fmt"
)

const debug = false

// First returns the first non-nil error.
func First(errs ...error) error {
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

func Bug(format string, msg ...any) {
	if debug {
		panic(fmt.Sprintf(format, msg...))
	}
}

// BugOn panics with the formatted message when cond holds and debug is on.
func BugOn(cond bool, format string, msg ...any) {
	if debug && cond {
		Bug(format, msg...)
	}
}

// ConfigError reports a rejected configuration value. It is returned before
// any work starts and wraps a sentinel that callers can match with errors.Is.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
