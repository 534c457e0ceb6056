package main

import (
	"fmt"
	"os"

	"github.com/minitt-lang/minitt/cmd/minitt/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "minitt: %s\n", err)
		os.Exit(1)
	}
}
