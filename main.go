// Package main is the entry point for the aptshow CLI application.
//
// This file bootstraps the application by invoking the command execution
// logic defined in the cmd package. The aptshow tool reports the available
// versions of installed packages and which distribution they come from.
package main

import "github.com/ajxudir/aptshow/cmd"

// main initializes and runs the aptshow CLI application.
//
// It delegates all flag parsing and execution to the cmd package, which
// handles classification and report generation.
func main() {
	cmd.Execute()
}
