package executor

import (
	"context"
	"io"
)

// Command describes an external process invocation.
type Command struct {
	Name  string
	Args  []string
	Dir   string
	Stdin io.Reader
}

// Executor runs external commands and returns their stdout.
type Executor interface {
	Run(ctx context.Context, cmd Command) ([]byte, error)
}
