package main

import (
	"fmt"
	"os"

	"github.com/Gthulhu/scenario-controller/cmd"
)

// @title Scenario Controller API
// @version 1.0.0
// @description Status and control of running simulation scenarios.
// @BasePath /
func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
