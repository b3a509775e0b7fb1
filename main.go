package main

import (
	"os"

	"github.com/sgslabs/sgsdiag/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
