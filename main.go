// main package for gradeline command-line tool
// Package main is the entry point for the Gradeline CLI.
package main

import "gradeline.dev/pkg/gradeline/cmd"

func main() {
	cmd.Execute()
}
