package logger

import "context"

// Logger is a leveled, printf-style logger. Each call takes the request
// context so that the request id (if any) is attached to the line.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}
