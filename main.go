// Package main is the entry point for the npub CLI application.
//
// This file bootstraps the application by invoking the command execution
// logic defined in the cmd package. The npub tool bumps, tags, and
// publishes the npm package in the current working directory.
package main

import "github.com/ajxudir/npub/cmd"

// main initializes and runs the npub CLI application.
func main() {
	cmd.Execute()
}
