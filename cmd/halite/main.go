// Command halite validates replay traces and dumps their transitions in the
// reference simulator's text protocol.
package main

import (
	"os"

	"github.com/Vlad-Shcherbina/halite/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
