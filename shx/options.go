package shx

import (
	"bytes"
	"os"
	"os/exec"
)

// Option adjusts the underlying exec.Cmd or the Result before the command
// starts.
type Option func(cmd *exec.Cmd, res *Result)

// PassStdio connects the command's stdin, stdout, and stderr to the
// current process's, passing output through untouched.
func PassStdio() Option {
	return func(cmd *exec.Cmd, _ *Result) {
		cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr
	}
}

// PassOutput connects the command's stdout and stderr to the current
// process's, leaving stdin disconnected.
func PassOutput() Option {
	return func(cmd *exec.Cmd, _ *Result) {
		cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
	}
}

func WithCwd(path string) Option {
	return func(cmd *exec.Cmd, _ *Result) {
		cmd.Dir = path
	}
}

// WithEnv adds variables on top of the inherited environment.
func WithEnv(env map[string]string) Option {
	return func(cmd *exec.Cmd, _ *Result) {
		if cmd.Env == nil {
			cmd.Env = os.Environ()
		}
		for k, v := range env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}
}

// CaptureOutput buffers the command's stdout in the Result instead of
// discarding it.
func CaptureOutput() Option {
	return func(cmd *exec.Cmd, res *Result) {
		res.stdout = &bytes.Buffer{}
		cmd.Stdout = res.stdout
	}
}

// CaptureCombined buffers the command's stdout and stderr interleaved in
// the Result.
func CaptureCombined() Option {
	return func(cmd *exec.Cmd, res *Result) {
		res.stdout = &bytes.Buffer{}
		cmd.Stdout = res.stdout
		cmd.Stderr = res.stdout
	}
}
