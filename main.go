package main

import (
	"os"

	"github.com/vidhya/vidhya/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
