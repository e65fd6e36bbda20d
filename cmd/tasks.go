package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"fastcat.org/go/devtask/task"
)

// taskCommand generates the subcommand for one catalog task. Unknown
// names never get here: cobra rejects them at the root.
func taskCommand(d *task.Dispatcher, t task.Task) *cobra.Command {
	return &cobra.Command{
		Use:   t.Name,
		Short: "run " + summarize(t),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return d.Run(cmd.Context(), t.Name)
		},
	}
}

func summarize(t task.Task) string {
	parts := make([]string, 0, len(t.Commands))
	for _, argv := range t.Commands {
		parts = append(parts, strings.Join(argv, " "))
	}
	return strings.Join(parts, "; ")
}
