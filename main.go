package main

import (
	"os"

	"github.com/Yobazuk/zipper/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
