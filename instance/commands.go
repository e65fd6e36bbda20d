package instance

import "github.com/spf13/cobra"

var commands []*cobra.Command

// AddCommands registers extra commands to hang off the root command, for
// wrapper builds that want more than the catalog tasks.
func AddCommands(cmds ...*cobra.Command) {
	commands = append(commands, cmds...)
}

func Commands() []*cobra.Command {
	return commands
}
