// Package main is the entry point for the klasifikasi CLI.
package main

import (
	"os"

	"github.com/couvx/chatbot/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
