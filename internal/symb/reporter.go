package symb

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separated errors reporting code from errors
// displaying code.
type Reporter interface {
	Report(err error)
	HadError() bool
	HadParseError() bool
}

// SimpleReporter writes error as-is to inner writer
type SimpleReporter struct {
	writer      io.Writer
	hadErr      bool
	hadParseErr bool
}

func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer, false, false}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	if ErrorKind(err) == "parse" {
		reporter.hadParseErr = true
	}
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) HadParseError() bool {
	return reporter.hadParseErr
}

// LogReporter sends errors to a logrus logger, tagged with their kind.
type LogReporter struct {
	logger      log.FieldLogger
	hadErr      bool
	hadParseErr bool
}

func NewLogReporter(logger log.FieldLogger) Reporter {
	return &LogReporter{logger, false, false}
}

func (reporter *LogReporter) Report(err error) {
	kind := ErrorKind(err)
	reporter.hadErr = true
	if kind == "parse" {
		reporter.hadParseErr = true
	}
	reporter.logger.WithField("kind", kind).Error(err)
}

func (reporter *LogReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *LogReporter) HadParseError() bool {
	return reporter.hadParseErr
}
