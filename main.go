package main

import (
	"fastcat.org/go/devtask/cmd"
)

// Normally you want to build your own wrapper around devtask if you need a
// custom app name or extra commands. This is the stock build.
func main() {
	cmd.Main()
}
