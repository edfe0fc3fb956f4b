package main

import (
	"os"

	"github.com/GaoLAQ/make-intelligence-education-dashboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
