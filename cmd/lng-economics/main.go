package main

import (
	"os"

	"github.com/iwvelando/lng-economics/internal/cli"
	"github.com/joho/godotenv"
)

func main() {
	// A .env file next to the binary may carry LNG_* overrides; it is optional.
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
