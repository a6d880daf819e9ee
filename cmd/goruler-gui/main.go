package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goruler/internal/app"
)

func main() {
	// optional config file path as the only argument
	cfgPath := ""
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	if err := app.Run(cfgPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
