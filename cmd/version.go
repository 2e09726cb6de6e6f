package cmd

import (
	"fmt"
	"io"
)

// Package metadata displayed by -V/--version.
const (
	// Name is the tool name.
	Name = "npub"

	// Description is the one-line tool description.
	Description = "Bump, tag, and publish an npm package with one command"

	// Homepage is the project homepage.
	Homepage = "https://github.com/ajxudir/npub"

	// Author is the tool author.
	Author = "ajxudir"

	// License is the license identifier.
	License = "MIT"
)

// Version information set at build time via ldflags.
// Example: go build -ldflags="-X github.com/ajxudir/npub/cmd.Version=1.0.0"
var (
	// Version is the semantic version of the build.
	Version = "dev"
)

// printVersionOutput prints name, version, and package metadata.
//
// Parameters:
//   - w: Destination writer (the command's stdout)
func printVersionOutput(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", Name, Version)
	fmt.Fprintf(w, "  %s\n", Description)
	fmt.Fprintf(w, "  Homepage: %s\n", Homepage)
	fmt.Fprintf(w, "  Author:   %s\n", Author)
	fmt.Fprintf(w, "  License:  %s\n", License)
}
