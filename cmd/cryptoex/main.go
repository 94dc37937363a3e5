package main

import (
	"os"

	"cryptoex/cmd/cryptoex/cmd"
	"cryptoex/cmd/cryptoex/internal/output"
)

func main() {
	if err := cmd.Execute(); err != nil {
		output.Error(err.Error())
		os.Exit(1)
	}
}
