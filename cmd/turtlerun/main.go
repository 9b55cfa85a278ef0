package main

import (
	"os"

	"github.com/turtle-script/cmd/turtlerun/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
