// tm - table manipulator
//
// A command-line filter for manipulating delimiter-separated tables:
// move, merge, split, translate, sort, and inspect columns referenced
// by position or header name.
package main

import (
	"fmt"
	"os"

	"github.com/kolkov/tm/cmd/tm/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "tm: %v\n", err)
		os.Exit(1)
	}
}
