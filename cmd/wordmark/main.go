// Command wordmark manages persistent word highlights and previews them on
// text files in the terminal.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
