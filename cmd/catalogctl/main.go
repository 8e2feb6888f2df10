// cmd/catalogctl/main.go
package main

import (
	"os"

	"github.com/emulatorgames/rom-catalog/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		os.Exit(1)
	}
}
