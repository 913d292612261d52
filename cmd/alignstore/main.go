// Package main provides the alignstore CLI.
package main

import "github.com/mesh-intelligence/alignstore/internal/cli"

func main() {
	cli.Execute()
}
