// Package shx runs external commands through a small builder API, keeping
// the exec plumbing out of callers.
package shx

import (
	"context"
	"os/exec"
)

// Cmd is a command being prepared to run.
type Cmd struct {
	cmdAndArgs []string
	opts       []Option
}

func New(name string, args ...string) *Cmd {
	return &Cmd{
		cmdAndArgs: append([]string{name}, args...),
	}
}

// Run is a convenience for New(...).With(opts...).Run(ctx).
func Run(
	ctx context.Context,
	cmdAndArgs []string,
	opts ...Option,
) (*Result, error) {
	return New(cmdAndArgs[0], cmdAndArgs[1:]...).With(opts...).Run(ctx)
}

func (c *Cmd) With(opts ...Option) *Cmd {
	c.opts = append(c.opts, opts...)
	return c
}

// Run runs the command and waits for it to finish.
//
// If the command fails to start, it returns a nil Result and the error. If
// the command starts but exits with an error code, the exit status is in
// the Result and the error return is nil.
func (c *Cmd) Run(ctx context.Context) (*Result, error) {
	cmd := exec.CommandContext(ctx, c.cmdAndArgs[0], c.cmdAndArgs[1:]...)
	var res Result
	for _, opt := range c.opts {
		opt(cmd, &res)
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	res.exitErr = cmd.Wait()
	res.processState = cmd.ProcessState
	return &res, nil
}
