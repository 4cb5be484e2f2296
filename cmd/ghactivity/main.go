package main

import (
	"os"

	"ghactivity/internal/cli"
	"ghactivity/internal/systemcodes"
)

func main() {
	err := cli.Execute()
	if err != nil {
		os.Exit(systemcodes.ErrorCodeGeneric)
	}
}
