// Package main provides the entry point for the vlan-replacer CLI tool.
// It delegates execution to the cmd package to maintain clean separation
// between main entry logic and command implementation details.
package main

import (
	"github.com/petrosquatr/vlan-replacer/cmd"
)

func main() {
	cmd.Execute()
}
