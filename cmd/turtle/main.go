// Package main is what runs when the turtle package is invoked as a program.
// The package is a library; running it directly is a usage error.
package main

import (
	"fmt"
	"io"
	"os"
)

const advisory = "Don't use me as entry script"

func main() {
	os.Exit(run(os.Stdout))
}

func run(w io.Writer) int {
	fmt.Fprintln(w, advisory)
	return 1
}
