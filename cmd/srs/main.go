// Command srs evaluates scene scripts and answers qualitative spatial
// queries about the regions they describe.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "srs:", err)
		os.Exit(1)
	}
}
