// Package main is the entry point for the maa CLI.
package main

import (
	"os"

	"github.com/thoreinstein/maa/cmd/maa/commands"
)

func main() {
	os.Exit(commands.Execute())
}
