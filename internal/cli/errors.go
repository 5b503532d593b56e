package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/multierr"

	"github.com/cory-johannsen/flyin/internal/flymap"
)

// Exit codes returned by Execute.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitValidation = 2
)

// ExitError carries the process exit code for a failed run.
type ExitError struct {
	Code int
	Err  error
	// reported is set once the error has been written to stderr.
	reported bool
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCode maps an error returned by the root command to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitFailure
}

// FormatError renders err for the terminal. Validation failures list every
// collected problem on its own line.
//
// Example output:
//
//	❌ INVALID MAP: 2 problems in maps/city.txt
//	   line 4: self-connection forbidden: zone "a"
//	   line 7: duplicate connection between "b" and "a"
//
//	   → List every problem: flyin --all-errors maps/city.txt
func FormatError(err error, path string, noColor bool) string {
	var b strings.Builder

	header := color.New(color.FgRed, color.Bold)
	body := color.New(color.FgRed)
	hint := color.New(color.FgCyan)
	if noColor {
		header.DisableColor()
		body.DisableColor()
		hint.DisableColor()
	}

	if !flymap.IsValidation(err) {
		header.Fprintf(&b, "❌ CANNOT READ MAP: %s\n", path)
		body.Fprintf(&b, "   %v\n", unwrapExit(err))
		return b.String()
	}

	problems := multierr.Errors(unwrapExit(err))
	noun := "problem"
	if len(problems) != 1 {
		noun = "problems"
	}
	header.Fprintf(&b, "❌ INVALID MAP: %d %s in %s\n", len(problems), noun, path)
	for _, p := range problems {
		body.Fprintf(&b, "   %v\n", p)
	}
	if len(problems) == 1 {
		b.WriteString("\n")
		hint.Fprintf(&b, "   → List every problem: flyin --all-errors %s\n", path)
	}
	return b.String()
}

func unwrapExit(err error) error {
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Err
	}
	return err
}

// usageError reports a bad invocation.
func usageError(format string, args ...any) error {
	return &ExitError{Code: ExitFailure, Err: fmt.Errorf(format, args...)}
}

// alreadyReported reports whether err was written to stderr by the command itself.
func alreadyReported(err error) bool {
	var ee *ExitError
	return errors.As(err, &ee) && ee.reported
}
