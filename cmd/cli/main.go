package main

import (
	"fmt"
	"os"

	"github.com/agileflow/agileflow-go/internal/interfaces/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
