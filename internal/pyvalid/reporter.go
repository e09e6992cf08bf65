package pyvalid

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Reporter defines the interface for structure that can display diagnostics
// to the user. A reporter separates the code that finds problems from the
// code that shows them, so the scanner never writes anywhere by itself.
type Reporter interface {
	Report(err error)
	HadError() bool
	Reset()
}

// SimpleReporter writes error as-is to inner writer
type SimpleReporter struct {
	writer io.Writer
	hadErr bool
}

func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer, false}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
}

// LogReporter sends diagnostics to a structured logger. Lexical warnings are
// logged at warn level, everything else at error level.
type LogReporter struct {
	logger *slog.Logger
	hadErr bool
}

func NewLogReporter(logger *slog.Logger) Reporter {
	return &LogReporter{logger, false}
}

func (reporter *LogReporter) Report(err error) {
	reporter.hadErr = true
	var warning *LexicalWarning
	if errors.As(err, &warning) {
		reporter.logger.Warn(
			"unexpected character",
			"line", warning.Line,
			"char", string(warning.Char),
		)
		return
	}
	var syntaxErr *SyntaxError
	if errors.As(err, &syntaxErr) {
		reporter.logger.Error(
			syntaxErr.Message,
			"line", syntaxErr.Line,
			"near", syntaxErr.Near,
		)
		return
	}
	reporter.logger.Error(err.Error())
}

func (reporter *LogReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *LogReporter) Reset() {
	reporter.hadErr = false
}

type nopReporter struct{}

func (nopReporter) Report(error)   {}
func (nopReporter) HadError() bool { return false }
func (nopReporter) Reset()         {}
