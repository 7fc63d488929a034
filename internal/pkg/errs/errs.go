// Package errs is the project-wide error vocabulary: a thin veneer over
// cockroachdb/errors so call sites never import it directly.
package errs

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// New creates an error carrying a stack trace.
func New(msg string) error {
	return errors.New(msg)
}

// Wrap annotates err with msg; a nil err stays nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}

// marked pairs a cause with a sentinel. Unwrap exposes both branches, so
// the standard library's errors.Is matches the sentinel as well as
// anything in the cause chain.
type marked struct {
	cause error
	mark  error
}

func (e *marked) Error() string { return e.cause.Error() }

func (e *marked) Unwrap() []error { return []error{e.cause, e.mark} }

func (e *marked) Format(s fmt.State, verb rune) {
	if f, ok := e.cause.(fmt.Formatter); ok {
		f.Format(s, verb)
		return
	}
	fmt.Fprint(s, e.cause.Error())
}

// Mark attaches a sentinel to err so errors.Is(err, mark) holds while the
// original cause is preserved for logs. A nil err yields the sentinel
// itself.
func Mark(err error, mark error) error {
	if err == nil {
		return mark
	}
	return &marked{cause: err, mark: mark}
}

// StackLines renders err verbosely and returns at most maxLines lines,
// for structured log output.
func StackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
