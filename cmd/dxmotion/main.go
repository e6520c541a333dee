// Command dxmotion inspects easing curves, validates motion presets and
// simulates animations on a fake clock.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/dxmotion/cmd/dxmotion/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
