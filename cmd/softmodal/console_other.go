//go:build !windows

package main

import (
	"fmt"
	"os"
)

func ensureConsole() {}

func reportFatal(message string) {
	fmt.Fprintln(os.Stderr, message)
}
