package cmd

import (
	"github.com/spf13/cobra"

	"fastcat.org/go/devtask/instance"
	"fastcat.org/go/devtask/task"
)

func Root(d *task.Dispatcher) *cobra.Command {
	root := &cobra.Command{
		Use:           instance.AppName,
		Short:         "run the project's development tasks",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       instance.Version(),
	}
	for _, name := range d.Catalog.Names() {
		root.AddCommand(taskCommand(d, d.Catalog[name]))
	}
	root.AddCommand(listCommand(d.Catalog))
	root.AddCommand(instance.Commands()...)
	return root
}
