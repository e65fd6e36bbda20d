package cmd_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastcat.org/go/devtask/cmd"
	"fastcat.org/go/devtask/task"
)

type spyRunner struct {
	calls    []string
	statuses map[string]int
}

func (s *spyRunner) Run(_ context.Context, argv task.Command) (int, error) {
	s.calls = append(s.calls, argv[0])
	return s.statuses[argv[0]], nil
}

func newRoot(statuses map[string]int) (*spyRunner, *cobra.Command) {
	spy := &spyRunner{statuses: statuses}
	d := &task.Dispatcher{
		Catalog: task.Catalog{
			"fmt":  {Name: "fmt", Commands: []task.Command{{"A"}, {"B"}}},
			"lint": {Name: "lint", Commands: []task.Command{{"C"}}},
			"test": {Name: "test", Commands: []task.Command{{"D"}}},
		},
		Runner: spy,
	}
	root := cmd.Root(d)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return spy, root
}

func TestRoot_runsTaskCommands(t *testing.T) {
	spy, root := newRoot(nil)
	root.SetArgs([]string{"fmt"})
	require.NoError(t, root.Execute())
	assert.Equal(t, []string{"A", "B"}, spy.calls)
}

func TestRoot_failFastForwardsStatus(t *testing.T) {
	spy, root := newRoot(map[string]int{"A": 2})
	root.SetArgs([]string{"fmt"})
	err := root.Execute()
	require.Error(t, err)
	var cmdErr *task.CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 2, cmdErr.ExitCode())
	assert.Equal(t, []string{"A"}, spy.calls, "B never starts after A fails")

	var ece cmd.ExitCodeErr
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, 2, ece.ExitCode())
}

func TestRoot_unknownTask(t *testing.T) {
	spy, root := newRoot(nil)
	root.SetArgs([]string{"build"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "build")
	assert.Empty(t, spy.calls, "no commands run for an unknown task")
}

func TestRoot_list(t *testing.T) {
	spy, root := newRoot(nil)
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"list"})
	require.NoError(t, root.Execute())
	assert.Empty(t, spy.calls, "list runs nothing")
	for _, want := range []string{"fmt", "lint", "test", "A", "D"} {
		assert.Contains(t, buf.String(), want)
	}
}
