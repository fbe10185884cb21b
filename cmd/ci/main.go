// Local CI entry point: go run ./cmd/ci
package main

import (
	"os"

	"huntboard/internal/ci"
)

func main() {
	os.Exit(ci.NewRunner().Run())
}
