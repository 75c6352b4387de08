package main

import (
	"fmt"
	"os"
)

// Version se fija con -ldflags al compilar.
var Version = "dev"

// @title        Vitamin Tracker API
// @version      1.0
// @description  Lista personal de vitaminas y registro diario de tomas.
// @BasePath     /api
func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
