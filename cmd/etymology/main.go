// Command etymology runs the etymology pipeline from the command line: over a
// saved wikitext file, against the live upstream sources, or to print the
// word of the day.
//
// Exit codes: 0 = success, 1 = error or no etymology found.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errNotFound) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
