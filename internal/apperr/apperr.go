// Package apperr classifies run failures and maps them to exit codes.
package apperr

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitInternal = 1
	ExitUsage    = 2 // configuration or input problems
	ExitIO       = 3 // output could not be written
	ExitCanceled = 130
)

// Sentinel kinds; attach them with the helpers below and test with errors.Is.
var (
	ErrInput  = errors.New("input error")
	ErrConfig = errors.New("configuration error")
	ErrOutput = errors.New("output error")
)

// Input marks err as an input failure.
func Input(err error, format string, args ...any) error {
	return mark(err, ErrInput, format, args...)
}

// Config marks err as a configuration failure.
func Config(err error, format string, args ...any) error {
	return mark(err, ErrConfig, format, args...)
}

// Output marks err as an output failure.
func Output(err error, format string, args ...any) error {
	return mark(err, ErrOutput, format, args...)
}

func mark(err, kind error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if format != "" {
		err = errors.Wrapf(err, format, args...)
	}
	return errors.Mark(err, kind)
}

// ExitCode picks the process exit status for err.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case errors.Is(err, ErrConfig), errors.Is(err, ErrInput):
		return ExitUsage
	case errors.Is(err, ErrOutput):
		return ExitIO
	default:
		return ExitInternal
	}
}

// Kind names the class of err for logs.
func Kind(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, ErrConfig):
		return "config"
	case errors.Is(err, ErrInput):
		return "input"
	case errors.Is(err, ErrOutput):
		return "output"
	default:
		return "internal"
	}
}
