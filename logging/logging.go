// Copyright 2026 The svlint Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package logging defines the structured logger interface used
// throughout svlint: a small leveled Logger with attachable fields,
// a StandardLogger backed by github.com/sirupsen/logrus, and a
// NoOpLogger for tests and library embedding that want silence by
// default.
package logging

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Level is a logging severity, ordered least to most severe.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Logger is the structured logging interface every svlint component
// (the cmd/lint.go worker pool, config resolution, waiver loading)
// logs through, rather than the standard library's log package
// directly.
type Logger interface {
	Debug(fmt string, a ...interface{})
	Info(fmt string, a ...interface{})
	Warn(fmt string, a ...interface{})
	Error(fmt string, a ...interface{})
	WithFields(fields map[string]interface{}) Logger
	GetFields() map[string]interface{}
	SetLevel(Level)
	GetLevel() Level
}

// StandardLogger is the production Logger, backed by a shared logrus
// instance.
type StandardLogger struct {
	logger *logrus.Logger
	fields map[string]interface{}
	level  Level
	mtx    *sync.Mutex
}

// New returns a StandardLogger at Info level, writing via a fresh
// logrus.Logger.
func New() *StandardLogger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	return &StandardLogger{logger: l, level: Info, mtx: &sync.Mutex{}}
}

func toLogrusLevel(l Level) logrus.Level {
	switch l {
	case Debug:
		return logrus.DebugLevel
	case Warn:
		return logrus.WarnLevel
	case Error:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func (l *StandardLogger) entry() *logrus.Entry {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.logger.WithFields(l.fields)
}

func (l *StandardLogger) Debug(f string, a ...interface{}) { l.entry().Debugf(f, a...) }
func (l *StandardLogger) Info(f string, a ...interface{})  { l.entry().Infof(f, a...) }
func (l *StandardLogger) Warn(f string, a ...interface{})  { l.entry().Warnf(f, a...) }
func (l *StandardLogger) Error(f string, a ...interface{}) { l.entry().Errorf(f, a...) }

// WithFields returns a new Logger sharing the underlying logrus
// instance but carrying fields merged on top of the receiver's own.
func (l *StandardLogger) WithFields(fields map[string]interface{}) Logger {
	merged := make(map[string]interface{}, len(l.fields)+len(fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &StandardLogger{logger: l.logger, fields: merged, level: l.level, mtx: l.mtx}
}

func (l *StandardLogger) GetFields() map[string]interface{} { return l.fields }

func (l *StandardLogger) SetLevel(level Level) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.level = level
	l.logger.SetLevel(toLogrusLevel(level))
}

func (l *StandardLogger) GetLevel() Level { return l.level }

// SetFormatter installs formatter on the underlying logrus instance.
func (l *StandardLogger) SetFormatter(formatter logrus.Formatter) {
	l.logger.SetFormatter(formatter)
}

// NoOpLogger discards everything; useful as a default when a caller
// doesn't want svlint's internal components to write anything.
type NoOpLogger struct {
	fields map[string]interface{}
	level  Level
}

func NewNoOpLogger() *NoOpLogger { return &NoOpLogger{} }

func (*NoOpLogger) Debug(string, ...interface{}) {}
func (*NoOpLogger) Info(string, ...interface{})  {}
func (*NoOpLogger) Warn(string, ...interface{})  {}
func (*NoOpLogger) Error(string, ...interface{}) {}

func (l *NoOpLogger) WithFields(fields map[string]interface{}) Logger {
	return &NoOpLogger{fields: fields, level: l.level}
}
func (l *NoOpLogger) GetFields() map[string]interface{} { return l.fields }
func (l *NoOpLogger) SetLevel(level Level)              { l.level = level }
func (l *NoOpLogger) GetLevel() Level                   { return l.level }
