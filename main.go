package main

import (
	"os"

	"huntboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// cobra has already reported the error; only the code is left.
		os.Exit(1)
	}
}
