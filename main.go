package main

import (
	"os"

	"github.com/prajwalk/mathsprint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
