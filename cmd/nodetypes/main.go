// Package main provides the nodetypes CLI.
package main

import "github.com/mesh-intelligence/nodetypes/internal/cli"

func main() {
	cli.Execute()
}
