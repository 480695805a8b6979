package main

import (
	"os"

	"github.com/reflector-agent/reflector/internal/infrastructure/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
