package log

import "context"

// noopLogger discards everything. Used in tests.
type noopLogger struct{}

// NewNoop returns a Logger that discards all output.
func NewNoop() Logger { return noopLogger{} }

func (noopLogger) Debug(context.Context, ...any)          {}
func (noopLogger) Debugf(context.Context, string, ...any) {}
func (noopLogger) Info(context.Context, ...any)           {}
func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warn(context.Context, ...any)           {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Error(context.Context, ...any)          {}
func (noopLogger) Errorf(context.Context, string, ...any) {}
func (noopLogger) Fatalf(context.Context, string, ...any) {}
