package cmd

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"fastcat.org/go/devtask/task"
)

func listCommand(cat task.Catalog) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "show the task catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := table.NewWriter()
			tw.SetOutputMirror(cmd.OutOrStdout())
			tw.AppendHeader(table.Row{"Task", "#", "Command"})
			for _, name := range cat.Names() {
				t := cat[name]
				for i, argv := range t.Commands {
					n := ""
					if i == 0 {
						n = t.Name
					}
					tw.AppendRow(table.Row{n, i + 1, strings.Join(argv, " ")})
				}
				tw.AppendSeparator()
			}
			tw.Render()
			return nil
		},
	}
}
