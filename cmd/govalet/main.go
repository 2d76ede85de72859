package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/doeshing/govalet/internal/infrastructure/cli"
)

func main() {
	opts := cli.Options{Verbose: isVerbose()}

	root := cli.NewRootCmd(opts)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func isVerbose() bool {
	return strings.EqualFold(os.Getenv("GOVALET_DEBUG"), "1") || strings.EqualFold(os.Getenv("GOVALET_DEBUG"), "true")
}
