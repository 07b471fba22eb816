package main

import (
	"fmt"
	"os"

	"qq/cmd"
	"qq/config"
)

func main() {
	// Credential gate runs before anything else, so a misconfigured
	// environment fails fast without touching the network.
	if err := config.CheckCredentials(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "An error occurred: %v\n", err)
		os.Exit(1)
	}
}
