package main

import (
	"fmt"
	"os"

	"github.com/subbu1996/folio/internal/launcher"
)

func main() {
	if err := launcher.Launch(); err != nil {
		fmt.Fprintf(os.Stderr, "folio: %v\n", err)
		os.Exit(1)
	}
}
