package main

import (
	"fmt"
	"os"

	"github.com/Iron-Ham/ptree/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ptree:", err)
		os.Exit(1)
	}
}
