// main package for the here command-line tool
// Package main is the entry point for the here CLI.
package main

import "here.dev/pkg/here/cmd"

func main() {
	cmd.Execute()
}
