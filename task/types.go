// Package task implements the task catalog and the dispatcher that runs
// its command sequences.
package task

import (
	"slices"

	"golang.org/x/exp/maps"
)

// Command is a single external program invocation: the program name
// followed by its fixed arguments. It is immutable once defined.
type Command []string

// Task is a named, ordered sequence of external command invocations.
// Tasks have no dependencies on each other.
type Task struct {
	Name     string
	Commands []Command
}

// Catalog maps task names to their definitions. It is built once at
// startup and never mutated afterwards; names are unique by construction.
type Catalog map[string]Task

// Names returns the task names in sorted order.
func (c Catalog) Names() []string {
	names := maps.Keys(c)
	slices.Sort(names)
	return names
}

func (c Catalog) Lookup(name string) (Task, bool) {
	t, ok := c[name]
	return t, ok
}
