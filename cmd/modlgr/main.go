package main

import (
	"os"

	"github.com/abyssdigger/modlgr/cmd/modlgr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
