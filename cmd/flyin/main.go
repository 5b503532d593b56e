// Package main provides the flyin binary, which validates a drone-delivery
// map file and prints the resulting zone graph.
package main

import (
	"os"

	"github.com/cory-johannsen/flyin/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
