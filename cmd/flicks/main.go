package main

import (
	"fmt"
	"os"

	"github.com/mmcdole/flicks/internal/cli"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	if err := cli.Execute(os.Args[1:], Version, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
